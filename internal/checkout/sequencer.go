package checkout

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/angelmondragon/modeststyle-backend/pkg/checkout"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

const (
	msgRequiredFields = "Please fill in all required fields."
	msgInvalidPromo   = "Invalid promo code"
	mobileNumberLen   = 11
)

var infoValidator = validator.New()

// Info is the contact and address form on the first step.
type Info struct {
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// Sequencer is the checkout draft for one session and the info → shipping → payment machine.
type Sequencer struct {
	mu sync.Mutex

	info         Info
	step         enums.CheckoutStep
	shipping     enums.ShippingMethod
	payment      enums.PaymentMethod
	promoCode    string
	promoApplied bool
	mobile       string
	errMsg       string
	loading      bool
}

// NewSequencer starts a draft on the info step with standard shipping and card payment.
func NewSequencer() *Sequencer {
	return &Sequencer{
		step:     enums.CheckoutStepInfo,
		shipping: enums.ShippingMethodStandard,
		payment:  enums.PaymentMethodCard,
	}
}

// Draft is a point-in-time copy of the sequencer state.
type Draft struct {
	Info           Info                 `json:"info"`
	Step           enums.CheckoutStep   `json:"step"`
	ShippingMethod enums.ShippingMethod `json:"shippingMethod"`
	PaymentMethod  enums.PaymentMethod  `json:"paymentMethod"`
	PromoCode      string               `json:"promoCode"`
	PromoApplied   bool                 `json:"promoApplied"`
	MobileNumber   string               `json:"mobileNumber"`
	Error          string               `json:"error"`
	Loading        bool                 `json:"loading"`
}

func (s *Sequencer) Snapshot() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}

func (s *Sequencer) draftLocked() Draft {
	return Draft{
		Info:           s.info,
		Step:           s.step,
		ShippingMethod: s.shipping,
		PaymentMethod:  s.payment,
		PromoCode:      s.promoCode,
		PromoApplied:   s.promoApplied,
		MobileNumber:   s.mobile,
		Error:          s.errMsg,
		Loading:        s.loading,
	}
}

func (s *Sequencer) UpdateInfo(info Info) {
	s.mu.Lock()
	s.info = info
	s.mu.Unlock()
}

// Advance moves one step forward. Leaving info requires the required contact and
// address fields; leaving shipping is unconditional; payment is terminal.
func (s *Sequencer) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case enums.CheckoutStepInfo:
		if err := infoValidator.Struct(s.info); err != nil {
			s.errMsg = msgRequiredFields
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, msgRequiredFields)
		}
		s.errMsg = ""
		s.step = enums.CheckoutStepShipping
	case enums.CheckoutStepShipping:
		s.step = enums.CheckoutStepPayment
	default:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "already on the final step")
	}
	return nil
}

// GoTo jumps to target when it is info, the current step, or shipping from beyond info.
func (s *Sequencer) GoTo(target enums.CheckoutStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed := target == enums.CheckoutStepInfo ||
		(target == enums.CheckoutStepShipping && s.step != enums.CheckoutStepInfo) ||
		target == s.step
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "step not reachable yet")
	}
	s.step = target
	return nil
}

func (s *Sequencer) SetShippingMethod(method enums.ShippingMethod) {
	s.mu.Lock()
	s.shipping = method
	s.mu.Unlock()
}

func (s *Sequencer) SelectPaymentMethod(method enums.PaymentMethod) {
	s.mu.Lock()
	s.payment = method
	s.mu.Unlock()
}

// SetMobileNumber keeps digits only, capped at 11.
func (s *Sequencer) SetMobileNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() >= mobileNumberLen {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s.mu.Lock()
	s.mobile = b.String()
	s.mu.Unlock()
	return b.String()
}

// ApplyPromo normalizes code to upper case and applies it if it is on the allow-list.
// Once applied, further calls are no-ops.
func (s *Sequencer) ApplyPromo(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.promoApplied {
		return nil
	}
	s.promoCode = checkout.NormalizePromoCode(code)
	switch {
	case checkout.IsKnownPromoCode(s.promoCode):
		s.promoApplied = true
		s.errMsg = ""
	case s.promoCode != "":
		s.errMsg = msgInvalidPromo
		return pkgerrors.New(pkgerrors.CodeValidation, msgInvalidPromo)
	}
	return nil
}

// Quote prices the draft against a cart subtotal.
func (s *Sequencer) Quote(subtotal int64) checkout.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked(subtotal)
}

func (s *Sequencer) quoteLocked(subtotal int64) checkout.Quote {
	return checkout.ComputeQuote(checkout.QuoteInput{
		Subtotal:       subtotal,
		ShippingMethod: s.shipping,
		PaymentMethod:  s.payment,
		PromoApplied:   s.promoApplied,
	})
}

// beginSubmit takes the loading flag. It rejects submits off the payment step,
// while another submit is in flight, and wallets without an 11 digit number.
func (s *Sequencer) beginSubmit() (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != enums.CheckoutStepPayment {
		return Draft{}, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout is not on the payment step")
	}
	if s.loading {
		return Draft{}, pkgerrors.New(pkgerrors.CodeStateConflict, "a submission is already in progress")
	}
	if s.payment.IsWallet() && len(s.mobile) != mobileNumberLen {
		return Draft{}, pkgerrors.New(pkgerrors.CodeValidation, "Enter your 11 digit mobile wallet number")
	}
	s.loading = true
	s.errMsg = ""
	return s.draftLocked(), nil
}

// endSubmit clears the loading flag and records msg, if any. The step is unchanged.
func (s *Sequencer) endSubmit(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}
