package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/modeststyle-backend/internal/snapshot"
	"github.com/angelmondragon/modeststyle-backend/internal/wishlist"
)

func TestWishlistToggleAndContains(t *testing.T) {
	svc, err := wishlist.NewService(wishlist.ServiceParams{Port: snapshot.NewMemoryStore(0), Logger: testLogger()})
	if err != nil {
		t.Fatalf("new wishlist service: %v", err)
	}
	router := chi.NewRouter()
	router.Post("/api/wishlist/toggle", WishlistToggle(svc, nil))
	router.Get("/api/wishlist/{id}", WishlistContains(svc, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/wishlist/toggle", `{"_id":"p9","name":"Silk Scarf","slug":"silk-scarf","price":2200,"image":""}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var view wishlist.View
	decodeData(t, resp, &view)
	if view.Count != 1 {
		t.Fatalf("expected one saved item, got %d", view.Count)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodGet, "/api/wishlist/p9", ""))
	var membership wishlist.Membership
	decodeData(t, resp, &membership)
	if !membership.InWishlist || membership.ID != "p9" {
		t.Fatalf("unexpected membership %+v", membership)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/wishlist/toggle", `{"_id":"p9"}`))
	decodeData(t, resp, &view)
	if view.Count != 0 {
		t.Fatalf("expected toggle to remove, got %d", view.Count)
	}
}

func TestWishlistToggleRequiresID(t *testing.T) {
	svc, err := wishlist.NewService(wishlist.ServiceParams{Port: snapshot.NewMemoryStore(0), Logger: testLogger()})
	if err != nil {
		t.Fatalf("new wishlist service: %v", err)
	}
	resp := httptest.NewRecorder()
	WishlistToggle(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/wishlist/toggle", `{"name":"nameless"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
