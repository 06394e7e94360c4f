package payments

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/angelmondragon/modeststyle-backend/pkg/backend"
	"github.com/angelmondragon/modeststyle-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	path    string
	payload any
	resp    *backend.Response
	err     error
	calls   int
}

func (f *fakePoster) PostJSON(_ context.Context, path string, payload any) (*backend.Response, error) {
	f.calls++
	f.path = path
	f.payload = payload
	return f.resp, f.err
}

func newClient(t *testing.T, poster *fakePoster) *Client {
	t.Helper()
	client, err := NewClient(ClientParams{
		Forwarder: poster,
		Logger:    logger.New(logger.Options{ServiceName: "payments-test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return client
}

func reply(status int, body string) *backend.Response {
	return &backend.Response{Status: status, Body: []byte(body)}
}

func TestCardRedirectsToHostedCheckout(t *testing.T) {
	poster := &fakePoster{resp: reply(200, `{"checkout_url":"https://pay.safepay.test/c/abc"}`)}
	client := newClient(t, poster)

	outcome, err := client.Submit(context.Background(), enums.PaymentMethodCard, OrderPayload{PaymentMethod: enums.GatewaySafepay})
	require.NoError(t, err)
	require.Equal(t, "/api/payment/safepay", poster.path)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	require.Equal(t, "https://pay.safepay.test/c/abc", outcome.URL)
	require.True(t, outcome.ClearsCart())
}

func TestCardWithoutURLIsNoop(t *testing.T) {
	client := newClient(t, &fakePoster{resp: reply(200, `{}`)})
	outcome, err := client.Submit(context.Background(), enums.PaymentMethodCard, OrderPayload{})
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome.Kind)
	require.False(t, outcome.ClearsCart())
}

func TestWalletOutcomes(t *testing.T) {
	poster := &fakePoster{resp: reply(200, `{"redirect_url":"https://jazzcash.test/pay"}`)}
	client := newClient(t, poster)
	outcome, err := client.Submit(context.Background(), enums.PaymentMethodJazzCash, OrderPayload{})
	require.NoError(t, err)
	require.Equal(t, "/api/payment/jazzcash", poster.path)
	require.Equal(t, OutcomeRedirect, outcome.Kind)

	poster.resp = reply(200, `{"order_id":"ord_77"}`)
	outcome, err = client.Submit(context.Background(), enums.PaymentMethodEasyPaisa, OrderPayload{})
	require.NoError(t, err)
	require.Equal(t, "/api/payment/easypaisa", poster.path)
	require.Equal(t, OutcomeNavigate, outcome.Kind)
	require.True(t, outcome.Pending)
	require.Equal(t, "/checkout/success?order_id=ord_77&pending=true", outcome.URL)
}

func TestCODNavigatesToConfirmation(t *testing.T) {
	client := newClient(t, &fakePoster{resp: reply(201, `{"order_id":"ord_9"}`)})
	outcome, err := client.Submit(context.Background(), enums.PaymentMethodCOD, OrderPayload{})
	require.NoError(t, err)
	require.Equal(t, OutcomeNavigate, outcome.Kind)
	require.False(t, outcome.Pending)
	require.Equal(t, "/checkout/success?order_id=ord_9", outcome.URL)
}

func TestRejectedUsesBackendErrorOrFallback(t *testing.T) {
	client := newClient(t, &fakePoster{resp: reply(400, `{"error":"Card declined"}`)})
	_, err := client.Submit(context.Background(), enums.PaymentMethodCard, OrderPayload{})
	require.Equal(t, "Card declined", pkgerrors.Flatten(err, ""))

	client = newClient(t, &fakePoster{resp: reply(500, `{}`)})
	_, err = client.Submit(context.Background(), enums.PaymentMethodCOD, OrderPayload{})
	require.Equal(t, "Order creation failed", pkgerrors.Flatten(err, ""))
}

func TestTransportFailureUsesGenericMessage(t *testing.T) {
	poster := &fakePoster{err: errors.New("dial tcp: refused")}
	client := newClient(t, poster)

	_, err := client.Submit(context.Background(), enums.PaymentMethodJazzCash, OrderPayload{})
	require.Equal(t, "Wallet payment failed.", pkgerrors.Flatten(err, ""))
	require.Equal(t, 1, poster.calls, "submissions are never retried")

	poster.err = nil
	poster.resp = reply(502, `<html>gateway</html>`)
	_, err = client.Submit(context.Background(), enums.PaymentMethodCard, OrderPayload{})
	require.Equal(t, "Payment failed. Please try again.", pkgerrors.Flatten(err, ""))
}
