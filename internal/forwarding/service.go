package forwarding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/angelmondragon/modeststyle-backend/pkg/backend"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/angelmondragon/modeststyle-backend/pkg/metrics"
)

const (
	defaultContentType = "application/json"
	unknownGateway     = "unknown"
)

type messages struct {
	rejected    string
	unavailable string
}

func messagesFor(gateway enums.Gateway) messages {
	if gateway == enums.GatewaySafepay {
		return messages{
			rejected:    "Safepay payment creation failed",
			unavailable: "Payment service unavailable. Please try again.",
		}
	}
	label := gateway.Label()
	return messages{
		rejected:    label + " payment failed",
		unavailable: label + " service unavailable. Please try again.",
	}
}

type doer interface {
	Do(ctx context.Context, req backend.Request) (*backend.Response, error)
}

type ServiceParams struct {
	Backend doer
	Logger  *logger.Logger
	Metrics *metrics.PaymentMetrics
}

// Service relays payment creation calls and gateway webhooks to the backend.
// It adds no signature checks, retries or idempotency handling.
type Service struct {
	backend doer
	logg    *logger.Logger
	metrics *metrics.PaymentMetrics
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Backend == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{backend: params.Backend, logg: params.Logger, metrics: params.Metrics}, nil
}

// Reply is the JSON body and status to hand back to the caller.
type Reply struct {
	Status int
	Body   any
}

type errorBody struct {
	Error any `json:"error"`
}

type receivedBody struct {
	Received bool `json:"received"`
}

// Acknowledged is the 200 {received: true} reply a gateway gets when its callback
// could not be relayed.
func Acknowledged() Reply {
	return Reply{Status: http.StatusOK, Body: receivedBody{Received: true}}
}

// Create forwards a create-payment body to /api/payment/{gateway}/create.
// A 2xx reply is relayed as 200 with the upstream body. A non-2xx reply becomes
// {error: detail or fallback} with the upstream status. Anything that fails
// locally, including an undecodable body on either side, is a 500.
func (s *Service) Create(ctx context.Context, gateway enums.Gateway, body []byte) Reply {
	msgs := messagesFor(gateway)
	ctx = s.logg.WithField(ctx, "gateway", gateway.String())
	unavailable := Reply{Status: http.StatusInternalServerError, Body: errorBody{Error: msgs.unavailable}}

	var inbound any
	if err := json.Unmarshal(body, &inbound); err != nil {
		s.logg.Warn(ctx, "payment forward: inbound body is not json")
		return unavailable
	}
	normalized, err := json.Marshal(inbound)
	if err != nil {
		s.logg.Error(ctx, "payment forward: re-encode body", err)
		return unavailable
	}

	start := time.Now()
	resp, err := s.backend.Do(ctx, backend.Request{
		Method:      http.MethodPost,
		Path:        "/api/payment/" + gateway.String() + "/create",
		Body:        normalized,
		ContentType: defaultContentType,
	})
	if err != nil {
		s.metrics.ObserveForward(gateway.String(), 0, time.Since(start))
		s.logg.Error(ctx, "payment forward failed", err)
		return unavailable
	}
	s.metrics.ObserveForward(gateway.String(), resp.Status, time.Since(start))

	var data map[string]any
	if err := resp.DecodeJSON(&data); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "status", resp.Status), "payment forward: upstream body is not json", err)
		return unavailable
	}
	if !resp.OK() {
		s.logg.Warn(s.logg.WithField(ctx, "status", resp.Status), "payment forward rejected upstream")
		detail, ok := data["detail"]
		if !ok || !truthy(detail) {
			detail = msgs.rejected
		}
		return Reply{Status: resp.Status, Body: errorBody{Error: detail}}
	}
	return Reply{Status: http.StatusOK, Body: data}
}

// Webhook relays a raw gateway callback to /api/payment/webhook/{gateway}.
// The upstream JSON and status are relayed; any local failure answers 200 {received: true}
// so the gateway does not retry against this hop.
func (s *Service) Webhook(ctx context.Context, gateway, contentType string, body []byte) Reply {
	gateway = strings.TrimSpace(gateway)
	if gateway == "" || gateway == "." || gateway == ".." {
		gateway = unknownGateway
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = defaultContentType
	}
	ctx = s.logg.WithField(ctx, "gateway", gateway)
	received := Acknowledged()

	start := time.Now()
	resp, err := s.backend.Do(ctx, backend.Request{
		Method:      http.MethodPost,
		Path:        "/api/payment/webhook/" + url.PathEscape(gateway),
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		s.metrics.ObserveForward("webhook", 0, time.Since(start))
		s.metrics.IncWebhookFallback(gateway)
		s.logg.Error(ctx, "webhook relay failed", err)
		return received
	}
	s.metrics.ObserveForward("webhook", resp.Status, time.Since(start))

	var data any
	if err := resp.DecodeJSON(&data); err != nil {
		s.metrics.IncWebhookFallback(gateway)
		s.logg.Error(s.logg.WithField(ctx, "status", resp.Status), "webhook relay: upstream body is not json", err)
		return received
	}
	return Reply{Status: resp.Status, Body: data}
}

// truthy follows the falsy set of the JSON values a backend can send as detail.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	}
	return true
}
