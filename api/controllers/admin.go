package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/api/validators"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

const maxRelayBody = 1 << 20

type adminService interface {
	ListOrders(ctx context.Context, token string) (json.RawMessage, error)
	GetOrder(ctx context.Context, token, orderID string) (json.RawMessage, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status string) (json.RawMessage, error)
	Stats(ctx context.Context, token string) (json.RawMessage, error)
	ListUsers(ctx context.Context, token string) (json.RawMessage, error)
	MyOrders(ctx context.Context, token string) (json.RawMessage, error)
	Chat(ctx context.Context, body []byte) (json.RawMessage, error)
	Imagine(ctx context.Context, body []byte) (json.RawMessage, error)
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// authed runs fn with the caller's bearer token and writes the raw backend reply.
func authed(logg *logger.Logger, fn func(r *http.Request, token string) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token, err := accessToken(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		out, err := fn(r, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func orderIDParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	return id, nil
}

func AdminListOrders(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		return svc.ListOrders(r.Context(), token)
	})
}

func AdminGetOrder(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		id, err := orderIDParam(r)
		if err != nil {
			return nil, err
		}
		return svc.GetOrder(r.Context(), token, id)
	})
}

func AdminUpdateOrderStatus(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		id, err := orderIDParam(r)
		if err != nil {
			return nil, err
		}
		var req orderStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return nil, err
		}
		return svc.UpdateOrderStatus(r.Context(), token, id, req.Status)
	})
}

func AdminStats(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		return svc.Stats(r.Context(), token)
	})
}

func AdminListUsers(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		return svc.ListUsers(r.Context(), token)
	})
}

func AccountOrders(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return authed(logg, func(r *http.Request, token string) (json.RawMessage, error) {
		return svc.MyOrders(r.Context(), token)
	})
}

// relayHandler passes an opaque JSON body through to an AI endpoint.
func relayHandler(logg *logger.Logger, fn func(ctx context.Context, body []byte) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRelayBody))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body too large"))
			return
		}
		out, err := fn(ctx, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func AIChat(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return relayHandler(logg, svc.Chat)
}

func AIImagine(svc adminService, logg *logger.Logger) http.HandlerFunc {
	return relayHandler(logg, svc.Imagine)
}
