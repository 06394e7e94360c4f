package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
)

// Amounts are whole PKR.
const (
	FreeShippingThreshold int64 = 5000
	StandardShippingCost  int64 = 250
	ExpressShippingCost   int64 = 500
	CODFee                int64 = 200
)

var promoRate = decimal.New(10, -2)

// QuoteInput is everything the order total depends on.
type QuoteInput struct {
	Subtotal       int64
	ShippingMethod enums.ShippingMethod
	PaymentMethod  enums.PaymentMethod
	PromoApplied   bool
}

// Quote is the priced breakdown shown in the order summary.
type Quote struct {
	Subtotal              int64 `json:"subtotal"`
	Shipping              int64 `json:"shipping"`
	Discount              int64 `json:"discount"`
	CODFee                int64 `json:"codFee"`
	Total                 int64 `json:"total"`
	FreeShippingRemaining int64 `json:"freeShippingRemaining"`
}

// ShippingCost: express is flat; standard is free at or above the threshold.
func ShippingCost(method enums.ShippingMethod, subtotal int64) int64 {
	if method == enums.ShippingMethodExpress {
		return ExpressShippingCost
	}
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingCost
}

// PromoDiscount is 10% of the subtotal rounded half up to a whole unit.
func PromoDiscount(subtotal int64, applied bool) int64 {
	if !applied {
		return 0
	}
	return decimal.NewFromInt(subtotal).Mul(promoRate).Round(0).IntPart()
}

func PaymentFee(method enums.PaymentMethod) int64 {
	if method == enums.PaymentMethodCOD {
		return CODFee
	}
	return 0
}

// FreeShippingRemaining is how much more the shopper must spend for free standard shipping.
func FreeShippingRemaining(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FreeShippingThreshold - subtotal
}

func ComputeQuote(in QuoteInput) Quote {
	q := Quote{
		Subtotal:              in.Subtotal,
		Shipping:              ShippingCost(in.ShippingMethod, in.Subtotal),
		Discount:              PromoDiscount(in.Subtotal, in.PromoApplied),
		CODFee:                PaymentFee(in.PaymentMethod),
		FreeShippingRemaining: FreeShippingRemaining(in.Subtotal),
	}
	q.Total = q.Subtotal + q.Shipping - q.Discount + q.CODFee
	return q
}
