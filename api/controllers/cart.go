package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/api/validators"
	"github.com/angelmondragon/modeststyle-backend/internal/cart"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type cartService interface {
	Get(ctx context.Context, owner string) (cart.View, error)
	AddItem(ctx context.Context, owner string, item cart.Item) (cart.View, error)
	RemoveItem(ctx context.Context, owner string, ref cart.LineRef) (cart.View, error)
	UpdateQuantity(ctx context.Context, owner string, ref cart.LineRef, quantity int) (cart.View, error)
	Clear(ctx context.Context, owner string) (cart.View, error)
	Toggle(ctx context.Context, owner string) (cart.View, error)
	SetOpen(ctx context.Context, owner string, open bool) (cart.View, error)
}

// updateQuantityRequest allows zero and negative quantities; both remove the line.
type updateQuantityRequest struct {
	cart.LineRef
	Quantity int `json:"quantity"`
}

type setOpenRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// cartAction wraps the shared session lookup and response writing.
func cartAction(logg *logger.Logger, fn func(r *http.Request, owner string) (cart.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		view, err := fn(r, owner)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CartFetch(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		return svc.Get(r.Context(), owner)
	})
}

func CartAddItem(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		var item cart.Item
		if err := validators.DecodeJSONBody(r, &item); err != nil {
			return cart.View{}, err
		}
		return svc.AddItem(r.Context(), owner, item)
	})
}

func CartUpdateQuantity(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		var req updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return cart.View{}, err
		}
		return svc.UpdateQuantity(r.Context(), owner, req.LineRef, req.Quantity)
	})
}

func CartRemoveItem(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		var ref cart.LineRef
		if err := validators.DecodeJSONBody(r, &ref); err != nil {
			return cart.View{}, err
		}
		return svc.RemoveItem(r.Context(), owner, ref)
	})
}

func CartClear(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		return svc.Clear(r.Context(), owner)
	})
}

func CartToggle(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		return svc.Toggle(r.Context(), owner)
	})
}

func CartSetOpen(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return cartAction(logg, func(r *http.Request, owner string) (cart.View, error) {
		var req setOpenRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return cart.View{}, err
		}
		return svc.SetOpen(r.Context(), owner, *req.Open)
	})
}
