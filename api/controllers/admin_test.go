package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/modeststyle-backend/api/middleware"
	"github.com/angelmondragon/modeststyle-backend/internal/access"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

type stubAdmin struct {
	token   string
	orderID string
	status  string
	body    []byte
	err     error
}

func (s *stubAdmin) ListOrders(_ context.Context, token string) (json.RawMessage, error) {
	s.token = token
	return json.RawMessage(`[{"id":"o1"}]`), s.err
}
func (s *stubAdmin) GetOrder(_ context.Context, token, orderID string) (json.RawMessage, error) {
	s.token, s.orderID = token, orderID
	return json.RawMessage(`{"id":"o1"}`), s.err
}
func (s *stubAdmin) UpdateOrderStatus(_ context.Context, token, orderID, status string) (json.RawMessage, error) {
	s.token, s.orderID, s.status = token, orderID, status
	return json.RawMessage(`{"id":"o1","status":"shipped"}`), s.err
}
func (s *stubAdmin) Stats(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), s.err
}
func (s *stubAdmin) ListUsers(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(`[]`), s.err
}
func (s *stubAdmin) MyOrders(_ context.Context, token string) (json.RawMessage, error) {
	s.token = token
	return json.RawMessage(`[]`), s.err
}
func (s *stubAdmin) Chat(_ context.Context, body []byte) (json.RawMessage, error) {
	s.body = body
	return json.RawMessage(`{"reply":"salaam"}`), s.err
}
func (s *stubAdmin) Imagine(_ context.Context, body []byte) (json.RawMessage, error) {
	s.body = body
	return json.RawMessage(`{}`), s.err
}

func signedIn(req *http.Request, role enums.MemberRole) *http.Request {
	session := &access.Session{Subject: "user_1", Role: role, Token: "tok-123"}
	return req.WithContext(middleware.WithAccessSession(req.Context(), session))
}

func TestAdminListOrdersRequiresSession(t *testing.T) {
	resp := httptest.NewRecorder()
	AdminListOrders(&stubAdmin{}, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusForwardsToken(t *testing.T) {
	svc := &stubAdmin{}
	router := chi.NewRouter()
	router.Patch("/api/admin/orders/{orderId}", AdminUpdateOrderStatus(svc, nil))

	req := signedIn(httptest.NewRequest(http.MethodPatch, "/api/admin/orders/o1", strings.NewReader(`{"status":"shipped"}`)), enums.MemberRoleAdmin)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.token != "tok-123" || svc.orderID != "o1" || svc.status != "shipped" {
		t.Fatalf("unexpected call %+v", svc)
	}
}

func TestAccountOrdersSurfacesBackendError(t *testing.T) {
	svc := &stubAdmin{err: pkgerrors.New(pkgerrors.CodeDependency, "Failed to load orders")}
	resp := httptest.NewRecorder()
	AccountOrders(svc, nil).ServeHTTP(resp, signedIn(httptest.NewRequest(http.MethodGet, "/api/account/orders", nil), enums.MemberRoleCustomer))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
	if apiErr := decodeError(t, resp); apiErr.Message != "Failed to load orders" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestAIChatRelaysBody(t *testing.T) {
	svc := &stubAdmin{}
	resp := httptest.NewRecorder()
	AIChat(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(`{"message":"what goes with a black abaya?"}`)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if string(svc.body) != `{"message":"what goes with a black abaya?"}` {
		t.Fatalf("body not relayed: %s", svc.body)
	}
	var out map[string]string
	decodeData(t, resp, &out)
	if out["reply"] != "salaam" {
		t.Fatalf("unexpected reply %v", out)
	}
}
