package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/modeststyle-backend/internal/cart"
	"github.com/angelmondragon/modeststyle-backend/internal/paymentmethods"
	"github.com/angelmondragon/modeststyle-backend/internal/payments"
	"github.com/angelmondragon/modeststyle-backend/pkg/checkout"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

const msgEmptyBag = "Your bag is empty"

type cartStores interface {
	Store(ctx context.Context, owner string) (*cart.Store, error)
}

type submitter interface {
	Submit(ctx context.Context, method enums.PaymentMethod, payload payments.OrderPayload) (payments.Outcome, error)
}

type ServiceParams struct {
	Carts    cartStores
	Payments submitter
	Sessions *Sessions
	Logger   *logger.Logger
}

// Service drives the checkout draft for a client session.
type Service struct {
	carts    cartStores
	payments submitter
	sessions *Sessions
	logg     *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if params.Payments == nil {
		return nil, fmt.Errorf("payments client required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("sessions registry required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		carts:    params.Carts,
		payments: params.Payments,
		sessions: params.Sessions,
		logg:     params.Logger,
	}, nil
}

// View is the checkout page state: draft, cart lines and the live quote.
type View struct {
	Draft
	Items       []cart.Item    `json:"items"`
	Quote       checkout.Quote `json:"quote"`
	MobileReady bool           `json:"mobileReady"`
	CartEmpty   bool           `json:"cartEmpty"`
}

// SubmitResult pairs the storefront instruction with the draft state after submit.
type SubmitResult struct {
	Outcome payments.Outcome `json:"outcome"`
	View    View             `json:"checkout"`
}

func (s *Service) Get(ctx context.Context, owner string) (View, error) {
	seq, err := s.sequencer(owner)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, owner, seq)
}

func (s *Service) UpdateInfo(ctx context.Context, owner string, info Info) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error {
		seq.UpdateInfo(info)
		return nil
	})
}

func (s *Service) Advance(ctx context.Context, owner string) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error { return seq.Advance() })
}

func (s *Service) GoTo(ctx context.Context, owner string, target enums.CheckoutStep) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error { return seq.GoTo(target) })
}

func (s *Service) SetShippingMethod(ctx context.Context, owner string, method enums.ShippingMethod) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error {
		seq.SetShippingMethod(method)
		return nil
	})
}

func (s *Service) SelectPaymentMethod(ctx context.Context, owner, raw string) (View, error) {
	method, err := paymentmethods.Select(raw)
	if err != nil {
		return View{}, err
	}
	return s.apply(ctx, owner, func(seq *Sequencer) error {
		seq.SelectPaymentMethod(method)
		return nil
	})
}

func (s *Service) SetMobileNumber(ctx context.Context, owner, raw string) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error {
		seq.SetMobileNumber(raw)
		return nil
	})
}

func (s *Service) ApplyPromo(ctx context.Context, owner, code string) (View, error) {
	return s.apply(ctx, owner, func(seq *Sequencer) error { return seq.ApplyPromo(code) })
}

// Submit dispatches the draft to its gateway. The backend call is detached from
// request cancellation so an abandoned request still completes upstream.
func (s *Service) Submit(ctx context.Context, owner string) (SubmitResult, error) {
	seq, err := s.sequencer(owner)
	if err != nil {
		return SubmitResult{}, err
	}
	store, err := s.carts.Store(ctx, owner)
	if err != nil {
		return SubmitResult{}, err
	}
	items := store.Items()
	if len(items) == 0 {
		return SubmitResult{}, pkgerrors.New(pkgerrors.CodeStateConflict, msgEmptyBag)
	}

	draft, err := seq.beginSubmit()
	if err != nil {
		return SubmitResult{}, err
	}
	quote := seq.Quote(cart.Subtotal(items))
	payload := BuildOrderPayload(draft, items, quote)

	logCtx := s.logg.WithSessionID(ctx, owner)
	outcome, submitErr := s.payments.Submit(context.WithoutCancel(logCtx), draft.PaymentMethod, payload)
	if submitErr != nil {
		seq.endSubmit(pkgerrors.Flatten(submitErr, "Payment failed. Please try again."))
		return SubmitResult{View: viewOf(store.Items(), seq)}, submitErr
	}

	seq.endSubmit("")
	if outcome.ClearsCart() {
		if err := store.ClearCart(ctx); err != nil {
			s.logg.Error(logCtx, "clear cart after order failed", err)
		}
		s.sessions.Discard(owner)
	}
	return SubmitResult{Outcome: outcome, View: viewOf(store.Items(), seq)}, nil
}

func (s *Service) sequencer(owner string) (*Sequencer, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client session required")
	}
	return s.sessions.Get(owner), nil
}

func (s *Service) apply(ctx context.Context, owner string, fn func(*Sequencer) error) (View, error) {
	seq, err := s.sequencer(owner)
	if err != nil {
		return View{}, err
	}
	opErr := fn(seq)
	view, err := s.view(ctx, owner, seq)
	if err != nil {
		return View{}, err
	}
	return view, opErr
}

func (s *Service) view(ctx context.Context, owner string, seq *Sequencer) (View, error) {
	store, err := s.carts.Store(ctx, owner)
	if err != nil {
		return View{}, err
	}
	return viewOf(store.Items(), seq), nil
}

// viewOf assembles the page model from a cart already in hand.
func viewOf(items []cart.Item, seq *Sequencer) View {
	draft := seq.Snapshot()
	return View{
		Draft:       draft,
		Items:       items,
		Quote:       seq.Quote(cart.Subtotal(items)),
		MobileReady: len(draft.MobileNumber) == mobileNumberLen,
		CartEmpty:   len(items) == 0,
	}
}
