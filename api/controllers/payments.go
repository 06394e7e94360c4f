package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/api/responses"
	"github.com/angelmondragon/modeststyle-backend/internal/forwarding"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

const maxForwardBody = 1 << 20

type forwarder interface {
	Create(ctx context.Context, gateway enums.Gateway, body []byte) forwarding.Reply
	Webhook(ctx context.Context, gateway, contentType string, body []byte) forwarding.Reply
}

// PaymentCreate relays a storefront payment request to the backend create route
// for gateway. Replies are written unwrapped; the storefront reads them as-is.
func PaymentCreate(svc forwarder, gateway enums.Gateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxForwardBody))
		if err != nil {
			if logg != nil {
				logg.Warn(logg.WithField(ctx, "gateway", gateway.String()), "payment body unreadable")
			}
			body = nil
		}
		reply := svc.Create(ctx, gateway, body)
		responses.WriteJSON(w, reply.Status, reply.Body)
	}
}

// PaymentWebhook relays a gateway callback. The gateway comes from ?gateway=.
func PaymentWebhook(svc forwarder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		gateway := r.URL.Query().Get("gateway")
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxForwardBody))
		if err != nil {
			// Partial callbacks are never relayed; the gateway still gets its ack.
			if logg != nil {
				logg.Warn(logg.WithField(ctx, "gateway", gateway), "webhook body unreadable, not relayed")
			}
			ack := forwarding.Acknowledged()
			responses.WriteJSON(w, ack.Status, ack.Body)
			return
		}
		reply := svc.Webhook(ctx, gateway, r.Header.Get("Content-Type"), body)
		responses.WriteJSON(w, reply.Status, reply.Body)
	}
}
