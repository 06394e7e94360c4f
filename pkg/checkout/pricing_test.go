package checkout

import (
	"testing"

	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
)

func TestShippingCost(t *testing.T) {
	cases := []struct {
		method   enums.ShippingMethod
		subtotal int64
		want     int64
	}{
		{enums.ShippingMethodStandard, 4999, 250},
		{enums.ShippingMethodStandard, 5000, 0},
		{enums.ShippingMethodStandard, 12000, 0},
		{enums.ShippingMethodExpress, 100, 500},
		{enums.ShippingMethodExpress, 50000, 500},
	}
	for _, tc := range cases {
		if got := ShippingCost(tc.method, tc.subtotal); got != tc.want {
			t.Fatalf("ShippingCost(%s, %d) = %d, want %d", tc.method, tc.subtotal, got, tc.want)
		}
	}
}

func TestPromoDiscountRounding(t *testing.T) {
	if got := PromoDiscount(10000, true); got != 1000 {
		t.Fatalf("expected 1000, got %d", got)
	}
	if got := PromoDiscount(10000, false); got != 0 {
		t.Fatalf("expected no discount when not applied, got %d", got)
	}
	if got := PromoDiscount(1235, true); got != 124 {
		t.Fatalf("expected half-up rounding to 124, got %d", got)
	}
	if got := PromoDiscount(1234, true); got != 123 {
		t.Fatalf("expected 123, got %d", got)
	}
}

func TestPaymentFeeOnlyForCOD(t *testing.T) {
	for _, method := range []enums.PaymentMethod{
		enums.PaymentMethodCard,
		enums.PaymentMethodJazzCash,
		enums.PaymentMethodEasyPaisa,
	} {
		if fee := PaymentFee(method); fee != 0 {
			t.Fatalf("expected no fee for %s, got %d", method, fee)
		}
	}
	if fee := PaymentFee(enums.PaymentMethodCOD); fee != 200 {
		t.Fatalf("expected COD fee 200, got %d", fee)
	}
}

func TestComputeQuoteScenarios(t *testing.T) {
	cod := ComputeQuote(QuoteInput{
		Subtotal:       4000,
		ShippingMethod: enums.ShippingMethodStandard,
		PaymentMethod:  enums.PaymentMethodCOD,
	})
	if cod.Shipping != 250 || cod.Discount != 0 || cod.CODFee != 200 || cod.Total != 4450 {
		t.Fatalf("unexpected COD quote %+v", cod)
	}
	if cod.FreeShippingRemaining != 1000 {
		t.Fatalf("expected 1000 remaining for free shipping, got %d", cod.FreeShippingRemaining)
	}

	card := ComputeQuote(QuoteInput{
		Subtotal:       6000,
		ShippingMethod: enums.ShippingMethodExpress,
		PaymentMethod:  enums.PaymentMethodCard,
		PromoApplied:   true,
	})
	if card.Shipping != 500 || card.Discount != 600 || card.CODFee != 0 || card.Total != 5900 {
		t.Fatalf("unexpected card quote %+v", card)
	}
	if card.FreeShippingRemaining != 0 {
		t.Fatalf("expected no remaining amount, got %d", card.FreeShippingRemaining)
	}
}

func TestPromoCodes(t *testing.T) {
	if !IsKnownPromoCode(NormalizePromoCode("modest10")) {
		t.Fatal("expected MODEST10 to be accepted case-insensitively")
	}
	if !IsKnownPromoCode(NormalizePromoCode("Welcome10")) {
		t.Fatal("expected WELCOME10 to be accepted")
	}
	if IsKnownPromoCode(NormalizePromoCode("FREESTUFF")) {
		t.Fatal("unexpected acceptance")
	}
}
