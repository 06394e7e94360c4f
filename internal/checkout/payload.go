package checkout

import (
	"strings"

	"github.com/angelmondragon/modeststyle-backend/internal/cart"
	"github.com/angelmondragon/modeststyle-backend/internal/payments"
	"github.com/angelmondragon/modeststyle-backend/pkg/checkout"
)

// BuildOrderPayload normalizes the draft, cart lines and quote into the gateway payload.
func BuildOrderPayload(draft Draft, items []cart.Item, quote checkout.Quote) payments.OrderPayload {
	lines := make([]payments.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, payments.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	payload := payments.OrderPayload{
		Items:         lines,
		CustomerEmail: draft.Info.Email,
		CustomerName:  strings.TrimSpace(draft.Info.FirstName + " " + draft.Info.LastName),
		CustomerPhone: draft.Info.Phone,
		ShippingAddress: payments.ShippingAddress{
			Address:    draft.Info.Address,
			City:       draft.Info.City,
			Province:   draft.Info.Province,
			PostalCode: draft.Info.PostalCode,
		},
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Discount:      quote.Discount,
		Total:         quote.Total,
		PaymentMethod: draft.PaymentMethod.Gateway(),
	}
	if draft.PromoApplied {
		payload.PromoCode = draft.PromoCode
	}
	if draft.PaymentMethod.IsWallet() {
		payload.MobileNumber = draft.MobileNumber
	}
	return payload
}
