package paymentmethods

import (
	"strings"

	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

// Option describes one selectable payment method on the payment step.
type Option struct {
	ID          enums.PaymentMethod `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Available   bool                `json:"available"`
	// RequiresMobile marks wallets that need an 11 digit number before submit.
	RequiresMobile bool `json:"requiresMobile"`
}

var catalog = []Option{
	{
		ID:          enums.PaymentMethodCard,
		Name:        "Credit / Debit Card",
		Description: "Visa, Mastercard via Safepay - secure hosted checkout",
		Icon:        "💳",
		Available:   true,
	},
	{
		ID:             enums.PaymentMethodJazzCash,
		Name:           "JazzCash",
		Description:    "Pay with your JazzCash mobile wallet",
		Icon:           "📱",
		Available:      true,
		RequiresMobile: true,
	},
	{
		ID:             enums.PaymentMethodEasyPaisa,
		Name:           "EasyPaisa",
		Description:    "Pay with your EasyPaisa mobile wallet",
		Icon:           "📲",
		Available:      true,
		RequiresMobile: true,
	},
	{
		ID:          enums.PaymentMethodCOD,
		Name:        "Cash on Delivery",
		Description: "Pay when your order arrives - PKR 200 COD fee",
		Icon:        "🏠",
		Available:   true,
	},
}

// Options returns the available methods in display order.
func Options() []Option {
	out := make([]Option, 0, len(catalog))
	for _, opt := range catalog {
		if opt.Available {
			out = append(out, opt)
		}
	}
	return out
}

// Select resolves raw input to an available method.
func Select(value string) (enums.PaymentMethod, error) {
	method, err := enums.ParsePaymentMethod(strings.ToLower(strings.TrimSpace(value)))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unsupported payment method")
	}
	for _, opt := range catalog {
		if opt.ID == method && opt.Available {
			return method, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "payment method unavailable")
}
