package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/api/validators"
	"github.com/angelmondragon/modeststyle-backend/internal/checkout"
	"github.com/angelmondragon/modeststyle-backend/internal/paymentmethods"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

type checkoutService interface {
	Get(ctx context.Context, owner string) (checkout.View, error)
	UpdateInfo(ctx context.Context, owner string, info checkout.Info) (checkout.View, error)
	Advance(ctx context.Context, owner string) (checkout.View, error)
	GoTo(ctx context.Context, owner string, target enums.CheckoutStep) (checkout.View, error)
	SetShippingMethod(ctx context.Context, owner string, method enums.ShippingMethod) (checkout.View, error)
	SelectPaymentMethod(ctx context.Context, owner, raw string) (checkout.View, error)
	SetMobileNumber(ctx context.Context, owner, raw string) (checkout.View, error)
	ApplyPromo(ctx context.Context, owner, code string) (checkout.View, error)
	Submit(ctx context.Context, owner string) (checkout.SubmitResult, error)
}

// infoRequest carries the form as typed; required fields are enforced on Advance,
// not on every keystroke. Lengths count characters, not bytes.
type infoRequest struct {
	Email      string `json:"email" validate:"max=254"`
	Phone      string `json:"phone" validate:"max=32"`
	FirstName  string `json:"firstName" validate:"max=100"`
	LastName   string `json:"lastName" validate:"max=100"`
	Address    string `json:"address" validate:"max=500"`
	City       string `json:"city" validate:"max=100"`
	Province   string `json:"province" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"max=20"`
}

func (r infoRequest) toInfo() checkout.Info {
	return checkout.Info{
		Email:      validators.SanitizeString(r.Email, 254),
		Phone:      validators.SanitizeString(r.Phone, 32),
		FirstName:  validators.SanitizeString(r.FirstName, 100),
		LastName:   validators.SanitizeString(r.LastName, 100),
		Address:    validators.SanitizeString(r.Address, 500),
		City:       validators.SanitizeString(r.City, 100),
		Province:   validators.SanitizeString(r.Province, 100),
		PostalCode: validators.SanitizeString(r.PostalCode, 20),
	}
}

type stepRequest struct {
	Step string `json:"step" validate:"required"`
}

type methodRequest struct {
	Method string `json:"method" validate:"required"`
}

type mobileRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

type promoRequest struct {
	Code string `json:"code" validate:"max=64"`
}

// writeCheckoutError attaches the draft to rejections so the page can render the
// inline error next to the current step.
func writeCheckoutError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error, view *checkout.View) {
	typed := pkgerrors.As(err)
	if typed != nil && view != nil && pkgerrors.MetadataFor(typed.Code()).DetailsAllowed {
		switch details := typed.Details().(type) {
		case nil:
			typed.WithDetails(map[string]any{"checkout": view})
		case map[string]any:
			details["checkout"] = view
		}
	}
	responses.WriteError(ctx, logg, w, err)
}

func checkoutAction(logg *logger.Logger, fn func(r *http.Request, owner string) (checkout.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		view, err := fn(r, owner)
		if err != nil {
			var attached *checkout.View
			if view.Step != "" {
				attached = &view
			}
			writeCheckoutError(ctx, logg, w, err, attached)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CheckoutFetch(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		return svc.Get(r.Context(), owner)
	})
}

func CheckoutUpdateInfo(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req infoRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		return svc.UpdateInfo(r.Context(), owner, req.toInfo())
	})
}

func CheckoutAdvance(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		return svc.Advance(r.Context(), owner)
	})
}

func CheckoutGoTo(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req stepRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		step, err := enums.ParseCheckoutStep(req.Step)
		if err != nil {
			return checkout.View{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown checkout step")
		}
		return svc.GoTo(r.Context(), owner, step)
	})
}

func CheckoutSetShipping(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req methodRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		method, err := enums.ParseShippingMethod(req.Method)
		if err != nil {
			return checkout.View{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown shipping method")
		}
		return svc.SetShippingMethod(r.Context(), owner, method)
	})
}

func CheckoutSelectPayment(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req methodRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		return svc.SelectPaymentMethod(r.Context(), owner, req.Method)
	})
}

func CheckoutSetMobile(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req mobileRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		return svc.SetMobileNumber(r.Context(), owner, req.MobileNumber)
	})
}

func CheckoutApplyPromo(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return checkoutAction(logg, func(r *http.Request, owner string) (checkout.View, error) {
		var req promoRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			return checkout.View{}, err
		}
		return svc.ApplyPromo(r.Context(), owner, validators.SanitizeString(req.Code, 64))
	})
}

// CheckoutSubmit returns the outcome the storefront acts on: redirect to a gateway,
// navigate to the confirmation page, or stay put.
func CheckoutSubmit(svc checkoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, err := clientSession(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		result, err := svc.Submit(ctx, owner)
		if err != nil {
			var attached *checkout.View
			if result.View.Step != "" {
				attached = &result.View
			}
			writeCheckoutError(ctx, logg, w, err, attached)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CheckoutPaymentOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, paymentmethods.Options())
	}
}
