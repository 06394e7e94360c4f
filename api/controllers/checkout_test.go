package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/modeststyle-backend/internal/checkout"
	"github.com/angelmondragon/modeststyle-backend/internal/paymentmethods"
	"github.com/angelmondragon/modeststyle-backend/internal/payments"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

type stubCheckout struct {
	view     checkout.View
	err      error
	result   checkout.SubmitResult
	gotInfo  checkout.Info
	gotStep  enums.CheckoutStep
	gotPromo string
}

func (s *stubCheckout) Get(context.Context, string) (checkout.View, error) { return s.view, s.err }
func (s *stubCheckout) UpdateInfo(_ context.Context, _ string, info checkout.Info) (checkout.View, error) {
	s.gotInfo = info
	return s.view, s.err
}
func (s *stubCheckout) Advance(context.Context, string) (checkout.View, error) { return s.view, s.err }
func (s *stubCheckout) GoTo(_ context.Context, _ string, target enums.CheckoutStep) (checkout.View, error) {
	s.gotStep = target
	return s.view, s.err
}
func (s *stubCheckout) SetShippingMethod(context.Context, string, enums.ShippingMethod) (checkout.View, error) {
	return s.view, s.err
}
func (s *stubCheckout) SelectPaymentMethod(context.Context, string, string) (checkout.View, error) {
	return s.view, s.err
}
func (s *stubCheckout) SetMobileNumber(context.Context, string, string) (checkout.View, error) {
	return s.view, s.err
}
func (s *stubCheckout) ApplyPromo(_ context.Context, _ string, code string) (checkout.View, error) {
	s.gotPromo = code
	return s.view, s.err
}
func (s *stubCheckout) Submit(context.Context, string) (checkout.SubmitResult, error) {
	return s.result, s.err
}

type checkoutErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Checkout *checkout.View `json:"checkout"`
			Status   int            `json:"status"`
		} `json:"details"`
	} `json:"error"`
}

func TestCheckoutAdvanceAttachesDraftToValidationError(t *testing.T) {
	view := checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepInfo, Error: "Please fill in all required fields."}}
	svc := &stubCheckout{view: view, err: pkgerrors.New(pkgerrors.CodeValidation, "Please fill in all required fields.")}

	resp := httptest.NewRecorder()
	CheckoutAdvance(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/advance", ""))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	var body checkoutErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	require.Equal(t, "Please fill in all required fields.", body.Error.Message)
	require.NotNil(t, body.Error.Details.Checkout)
	require.Equal(t, enums.CheckoutStepInfo, body.Error.Details.Checkout.Step)
}

func TestCheckoutGoToRejectsUnknownStep(t *testing.T) {
	svc := &stubCheckout{}
	resp := httptest.NewRecorder()
	CheckoutGoTo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/step", `{"step":"review"}`))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Empty(t, svc.gotStep)
}

func TestCheckoutGoToPassesParsedStep(t *testing.T) {
	svc := &stubCheckout{view: checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepInfo}}}
	resp := httptest.NewRecorder()
	CheckoutGoTo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/step", `{"step":"info"}`))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, enums.CheckoutStepInfo, svc.gotStep)
}

func TestCheckoutUpdateInfoAcceptsPartialForm(t *testing.T) {
	svc := &stubCheckout{view: checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepInfo}}}
	resp := httptest.NewRecorder()
	CheckoutUpdateInfo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPut, "/api/checkout/info", `{"email":"  aisha@example.com "}`))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "aisha@example.com", svc.gotInfo.Email)
	require.Empty(t, svc.gotInfo.City)
}

func TestCheckoutUpdateInfoKeepsUrduAddressIntact(t *testing.T) {
	svc := &stubCheckout{view: checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepInfo}}}
	body, err := json.Marshal(map[string]string{"firstName": "عائشہ", "address": "مکان ۱۲، گلی ۴، کلفٹن"})
	require.NoError(t, err)
	resp := httptest.NewRecorder()
	CheckoutUpdateInfo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPut, "/api/checkout/info", string(body)))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "عائشہ", svc.gotInfo.FirstName)
	require.Equal(t, "مکان ۱۲، گلی ۴، کلفٹن", svc.gotInfo.Address)
}

func TestCheckoutUpdateInfoRejectsOversizedField(t *testing.T) {
	svc := &stubCheckout{}
	body, err := json.Marshal(map[string]string{"city": strings.Repeat("ع", 101)})
	require.NoError(t, err)
	resp := httptest.NewRecorder()
	CheckoutUpdateInfo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPut, "/api/checkout/info", string(body)))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, string(pkgerrors.CodeValidation), decodeError(t, resp).Code)
	require.Empty(t, svc.gotInfo.City, "oversized form must not reach the draft")
}

func TestCheckoutApplyPromoTrimsCode(t *testing.T) {
	svc := &stubCheckout{view: checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepPayment}}}
	resp := httptest.NewRecorder()
	CheckoutApplyPromo(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/promo", `{"code":" modest10 "}`))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "modest10", svc.gotPromo)
}

func TestCheckoutSubmitFailureKeepsStatusAndDraft(t *testing.T) {
	view := checkout.View{Draft: checkout.Draft{Step: enums.CheckoutStepPayment, Error: "JazzCash payment failed"}}
	svc := &stubCheckout{
		result: checkout.SubmitResult{View: view},
		err:    pkgerrors.New(pkgerrors.CodeDependency, "JazzCash payment failed").WithDetails(map[string]any{"status": 502}),
	}

	resp := httptest.NewRecorder()
	CheckoutSubmit(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/submit", ""))

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	var body checkoutErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "JazzCash payment failed", body.Error.Message)
	require.Equal(t, 502, body.Error.Details.Status)
	require.NotNil(t, body.Error.Details.Checkout)
	require.Equal(t, enums.CheckoutStepPayment, body.Error.Details.Checkout.Step)
}

func TestCheckoutSubmitReturnsOutcome(t *testing.T) {
	svc := &stubCheckout{result: checkout.SubmitResult{
		Outcome: payments.Outcome{Kind: payments.OutcomeNavigate, URL: "/checkout/success?order_id=ord_1", OrderID: "ord_1"},
	}}
	resp := httptest.NewRecorder()
	CheckoutSubmit(svc, nil).ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/checkout/submit", ""))

	require.Equal(t, http.StatusOK, resp.Code)
	var result checkout.SubmitResult
	decodeData(t, resp, &result)
	require.Equal(t, payments.OutcomeNavigate, result.Outcome.Kind)
	require.Equal(t, "ord_1", result.Outcome.OrderID)
}

func TestCheckoutPaymentOptions(t *testing.T) {
	resp := httptest.NewRecorder()
	CheckoutPaymentOptions().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/checkout/payment-options", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var options []paymentmethods.Option
	decodeData(t, resp, &options)
	require.Len(t, options, 4)
	require.Equal(t, enums.PaymentMethodCard, options[0].ID)
	require.Equal(t, enums.PaymentMethodCOD, options[3].ID)
}

func TestCheckoutSuccessPending(t *testing.T) {
	resp := httptest.NewRecorder()
	CheckoutSuccess().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/checkout/success?order_id=abcdef123456&pending=true", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var view struct {
		Status  string `json:"status"`
		ShortID string `json:"shortId"`
	}
	decodeData(t, resp, &view)
	require.Equal(t, "pending", view.Status)
	require.Equal(t, "abcdef12", view.ShortID)
}
