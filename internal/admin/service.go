package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/angelmondragon/modeststyle-backend/pkg/backend"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type doer interface {
	Do(ctx context.Context, req backend.Request) (*backend.Response, error)
}

type ServiceParams struct {
	Backend doer
	Logger  *logger.Logger
}

// Service proxies the admin dashboard, account and assistant calls to the backend.
// Bodies are relayed untouched; failures collapse to one shopper-facing message.
type Service struct {
	backend doer
	logg    *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Backend == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{backend: params.Backend, logg: params.Logger}, nil
}

func (s *Service) ListOrders(ctx context.Context, token string) (json.RawMessage, error) {
	return s.call(ctx, backend.Request{Method: http.MethodGet, Path: "/api/admin/orders"}, token, "Failed to load orders")
}

func (s *Service) GetOrder(ctx context.Context, token, orderID string) (json.RawMessage, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	return s.call(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/admin/orders/" + url.PathEscape(orderID),
	}, token, "Order not found")
}

type statusUpdate struct {
	Status enums.OrderStatus `json:"status"`
}

// UpdateOrderStatus validates status locally before anything reaches the backend.
func (s *Service) UpdateOrderStatus(ctx context.Context, token, orderID, status string) (json.RawMessage, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	parsed, err := enums.ParseOrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status").
			WithDetails(map[string]any{"allowed": enums.OrderStatusValues()})
	}
	body, err := json.Marshal(statusUpdate{Status: parsed})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode status update")
	}
	return s.call(ctx, backend.Request{
		Method:      http.MethodPatch,
		Path:        "/api/admin/orders/" + url.PathEscape(orderID),
		Body:        body,
		ContentType: "application/json",
	}, token, "Failed to update order")
}

func (s *Service) Stats(ctx context.Context, token string) (json.RawMessage, error) {
	return s.call(ctx, backend.Request{Method: http.MethodGet, Path: "/api/admin/stats"}, token, "Failed to load stats")
}

func (s *Service) ListUsers(ctx context.Context, token string) (json.RawMessage, error) {
	return s.call(ctx, backend.Request{Method: http.MethodGet, Path: "/api/admin/users"}, token, "Failed to load users")
}

// MyOrders lists the signed-in customer's orders.
func (s *Service) MyOrders(ctx context.Context, token string) (json.RawMessage, error) {
	return s.call(ctx, backend.Request{Method: http.MethodGet, Path: "/api/orders/mine"}, token, "Failed to load orders")
}

func (s *Service) Chat(ctx context.Context, body []byte) (json.RawMessage, error) {
	return s.relay(ctx, "/api/ai/chat", body, "Sorry, I'm having trouble connecting. Please try again.")
}

func (s *Service) Imagine(ctx context.Context, body []byte) (json.RawMessage, error) {
	return s.relay(ctx, "/api/ai/imagine", body, "Failed to generate image. Please try again.")
}

func (s *Service) relay(ctx context.Context, path string, body []byte, fallback string) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request body must be json")
	}
	return s.call(ctx, backend.Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentType: "application/json",
	}, "", fallback)
}

func (s *Service) call(ctx context.Context, req backend.Request, token, fallback string) (json.RawMessage, error) {
	if token != "" {
		req.Authorization = "Bearer " + token
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"upstream_path": req.Path, "upstream_method": req.Method})

	resp, err := s.backend.Do(ctx, req)
	if err != nil {
		s.logg.Error(ctx, "backend call failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fallback)
	}
	if !resp.OK() {
		msg := resp.Detail()
		if msg == "" {
			msg = fallback
		}
		s.logg.Warn(s.logg.WithField(ctx, "status", resp.Status), "backend call rejected")
		return nil, pkgerrors.New(codeForStatus(resp.Status), msg).WithDetails(map[string]any{"status": resp.Status})
	}
	if !json.Valid(resp.Body) {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fallback)
	}
	return json.RawMessage(resp.Body), nil
}

func codeForStatus(status int) pkgerrors.Code {
	switch {
	case status == http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case status == http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case status == http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case status == http.StatusConflict:
		return pkgerrors.CodeConflict
	case status >= 400 && status < 500:
		return pkgerrors.CodeValidation
	}
	return pkgerrors.CodeDependency
}
