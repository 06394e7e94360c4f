package payments

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/angelmondragon/modeststyle-backend/pkg/backend"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/angelmondragon/modeststyle-backend/pkg/metrics"
)

const successPath = "/checkout/success"

type fallbackMessages struct {
	rejected    string
	unreachable string
}

var fallbacks = map[enums.PaymentMethod]fallbackMessages{
	enums.PaymentMethodCard:      {rejected: "Payment failed", unreachable: "Payment failed. Please try again."},
	enums.PaymentMethodJazzCash:  {rejected: "Payment failed", unreachable: "Wallet payment failed."},
	enums.PaymentMethodEasyPaisa: {rejected: "Payment failed", unreachable: "Wallet payment failed."},
	enums.PaymentMethodCOD:       {rejected: "Order creation failed", unreachable: "Order failed."},
}

type poster interface {
	PostJSON(ctx context.Context, path string, payload any) (*backend.Response, error)
}

type ClientParams struct {
	// Forwarder reaches the local forwarding routes (/api/payment/...).
	Forwarder poster
	Logger    *logger.Logger
	Metrics   *metrics.PaymentMetrics
}

// Client submits order payloads to the forwarding routes and interprets the replies.
// It never retries and never attaches an idempotency key.
type Client struct {
	forwarder poster
	logg      *logger.Logger
	metrics   *metrics.PaymentMetrics
}

func NewClient(params ClientParams) (*Client, error) {
	if params.Forwarder == nil {
		return nil, fmt.Errorf("forwarding client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Client{forwarder: params.Forwarder, logg: params.Logger, metrics: params.Metrics}, nil
}

type gatewayReply struct {
	Error       string `json:"error"`
	CheckoutURL string `json:"checkout_url"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}

// Submit posts the payload for method. The payload's PaymentMethod must already carry
// the gateway tag. Errors carry a single shopper-facing message.
func (c *Client) Submit(ctx context.Context, method enums.PaymentMethod, payload OrderPayload) (Outcome, error) {
	messages, ok := fallbacks[method]
	if !ok {
		return Outcome{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method")
	}
	gateway := method.Gateway()
	path := "/api/payment/" + gateway.String()

	ctx = c.logg.WithFields(ctx, map[string]any{"payment_method": method.String(), "gateway": gateway.String()})
	start := time.Now()
	resp, err := c.forwarder.PostJSON(ctx, path, payload)
	if err != nil {
		c.logg.Error(ctx, "payment submission unreachable", err)
		c.metrics.IncDispatch(method.String(), "error")
		return Outcome{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, messages.unreachable)
	}

	var reply gatewayReply
	if decodeErr := resp.DecodeJSON(&reply); decodeErr != nil {
		c.logg.Error(ctx, "payment reply undecodable", decodeErr)
		c.metrics.IncDispatch(method.String(), "error")
		return Outcome{}, pkgerrors.Wrap(pkgerrors.CodeDependency, decodeErr, messages.unreachable)
	}
	if !resp.OK() {
		msg := strings.TrimSpace(reply.Error)
		if msg == "" {
			msg = messages.rejected
		}
		c.logg.Warn(c.logg.WithField(ctx, "status", resp.Status), "payment submission rejected")
		c.metrics.IncDispatch(method.String(), "rejected")
		return Outcome{}, pkgerrors.New(pkgerrors.CodeDependency, msg).WithDetails(map[string]any{"status": resp.Status})
	}

	outcome := interpret(method, reply)
	c.metrics.IncDispatch(method.String(), string(outcome.Kind))
	c.logg.Info(c.logg.WithFields(ctx, map[string]any{
		"outcome":     outcome.Kind,
		"order_id":    outcome.OrderID,
		"duration_ms": time.Since(start).Milliseconds(),
	}), "payment submission accepted")
	return outcome, nil
}

func interpret(method enums.PaymentMethod, reply gatewayReply) Outcome {
	switch {
	case method == enums.PaymentMethodCard:
		if reply.CheckoutURL != "" {
			return Outcome{Kind: OutcomeRedirect, URL: reply.CheckoutURL}
		}
	case method.IsWallet():
		if reply.RedirectURL != "" {
			return Outcome{Kind: OutcomeRedirect, URL: reply.RedirectURL}
		}
		if reply.OrderID != "" {
			return Outcome{
				Kind:    OutcomeNavigate,
				URL:     SuccessURL(reply.OrderID, true),
				OrderID: reply.OrderID,
				Pending: true,
			}
		}
	case method == enums.PaymentMethodCOD:
		return Outcome{Kind: OutcomeNavigate, URL: SuccessURL(reply.OrderID, false), OrderID: reply.OrderID}
	}
	return Outcome{Kind: OutcomeNone}
}

// SuccessURL builds the confirmation path for an order.
func SuccessURL(orderID string, pending bool) string {
	q := url.Values{}
	q.Set("order_id", orderID)
	if pending {
		q.Set("pending", "true")
	}
	return successPath + "?" + q.Encode()
}
