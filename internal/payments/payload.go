package payments

import "github.com/angelmondragon/modeststyle-backend/pkg/enums"

// OrderItem is one line of the outbound order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// OrderPayload is the normalized order sent to every gateway route.
type OrderPayload struct {
	Items           []OrderItem     `json:"items"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Subtotal        int64           `json:"subtotal"`
	Shipping        int64           `json:"shipping"`
	Discount        int64           `json:"discount"`
	Total           int64           `json:"total"`
	PromoCode       string          `json:"promo_code,omitempty"`
	PaymentMethod   enums.Gateway   `json:"payment_method"`
	MobileNumber    string          `json:"mobile_number,omitempty"`
}

// OutcomeKind tells the storefront what to do after a submission.
type OutcomeKind string

const (
	// OutcomeNone: the call succeeded but returned nothing actionable; the cart is kept.
	OutcomeNone     OutcomeKind = "none"
	OutcomeRedirect OutcomeKind = "redirect"
	OutcomeNavigate OutcomeKind = "navigate"
)

type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	URL     string      `json:"url,omitempty"`
	OrderID string      `json:"orderId,omitempty"`
	Pending bool        `json:"pending"`
}

// ClearsCart reports whether the storefront empties the cart for this outcome.
func (o Outcome) ClearsCart() bool {
	return o.Kind == OutcomeRedirect || o.Kind == OutcomeNavigate
}
