package enums

import "fmt"

// PaymentMethod is the shopper's choice on the payment step.
type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodJazzCash  PaymentMethod = "jazzcash"
	PaymentMethodEasyPaisa PaymentMethod = "easypaisa"
	PaymentMethodCOD       PaymentMethod = "cod"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodJazzCash,
	PaymentMethodEasyPaisa,
	PaymentMethodCOD,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsWallet reports whether the method needs a captured mobile number.
func (p PaymentMethod) IsWallet() bool {
	return p == PaymentMethodJazzCash || p == PaymentMethodEasyPaisa
}

// Gateway returns the tag the order payload carries for this method.
func (p PaymentMethod) Gateway() Gateway {
	switch p {
	case PaymentMethodCard:
		return GatewaySafepay
	case PaymentMethodJazzCash:
		return GatewayJazzCash
	case PaymentMethodEasyPaisa:
		return GatewayEasyPaisa
	case PaymentMethodCOD:
		return GatewayCOD
	}
	return ""
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
