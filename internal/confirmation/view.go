// Package confirmation renders the order confirmation shown after checkout.
package confirmation

import (
	"net/url"
	"strings"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
)

const (
	shortIDLen      = 8
	deliveryMessage = "You'll receive a confirmation email shortly with tracking details. Delivery within 3-5 business days across Pakistan."
)

// View is the confirmation page content. It is derived from the query string only;
// nothing is looked up.
type View struct {
	Status   Status `json:"status"`
	OrderID  string `json:"orderId,omitempty"`
	ShortID  string `json:"shortId,omitempty"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Delivery string `json:"delivery"`
	OrderURL string `json:"orderUrl"`
	ShopURL  string `json:"shopUrl"`
}

// FromQuery reads order_id and pending=true.
func FromQuery(q url.Values) View {
	orderID := strings.TrimSpace(q.Get("order_id"))
	view := View{
		Status:   StatusConfirmed,
		OrderID:  orderID,
		ShortID:  shortID(orderID),
		Title:    "Order Confirmed!",
		Message:  "Thank you for your order. We’ve received your payment.",
		Delivery: deliveryMessage,
		OrderURL: "/account?tab=orders",
		ShopURL:  "/products",
	}
	if q.Get("pending") == "true" {
		view.Status = StatusPending
		view.Title = "Payment Pending"
		view.Message = "Please approve the payment request on your mobile wallet app to complete your order."
	}
	return view
}

func shortID(orderID string) string {
	runes := []rune(orderID)
	if len(runes) > shortIDLen {
		runes = runes[:shortIDLen]
	}
	return string(runes)
}
