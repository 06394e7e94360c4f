package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/api/validators"
	"github.com/angelmondragon/modeststyle-backend/internal/wishlist"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type wishlistService interface {
	Get(ctx context.Context, owner string) (wishlist.View, error)
	Toggle(ctx context.Context, owner string, item wishlist.Item) (wishlist.View, error)
	Contains(ctx context.Context, owner, id string) (wishlist.Membership, error)
	Clear(ctx context.Context, owner string) (wishlist.View, error)
}

func WishlistFetch(svc wishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		view, err := svc.Get(ctx, owner)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func WishlistToggle(svc wishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var item wishlist.Item
		if err := validators.DecodeJSONBody(r, &item); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		view, err := svc.Toggle(ctx, owner, item)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// WishlistContains answers isInWishlist for the {id} path segment.
func WishlistContains(svc wishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}
		membership, err := svc.Contains(ctx, owner, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, membership)
	}
}

func WishlistClear(svc wishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		view, err := svc.Clear(ctx, owner)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
