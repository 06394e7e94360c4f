package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics tracks checkout dispatches and the forwarding hop to the backend.
type PaymentMetrics struct {
	forwardDuration  *prometheus.HistogramVec
	forwardResponses *prometheus.CounterVec
	webhookFallbacks *prometheus.CounterVec
	dispatches       *prometheus.CounterVec
}

func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	forwardDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_forward_duration_seconds",
		Help:      "Latency of forwarded payment calls to the backend.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"gateway"})
	forwardResponses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_forward_responses_total",
		Help:      "Forwarded payment calls by gateway and upstream status.",
	}, []string{"gateway", "status"})
	webhookFallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_webhook_fallbacks_total",
		Help:      "Webhook relays answered locally with received=true.",
	}, []string{"gateway"})
	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_dispatches_total",
		Help:      "Checkout submissions by payment method and outcome.",
	}, []string{"method", "outcome"})
	reg.MustRegister(forwardDuration, forwardResponses, webhookFallbacks, dispatches)
	return &PaymentMetrics{
		forwardDuration:  forwardDuration,
		forwardResponses: forwardResponses,
		webhookFallbacks: webhookFallbacks,
		dispatches:       dispatches,
	}
}

// ObserveForward records one forwarded call; status 0 means no upstream response.
func (m *PaymentMetrics) ObserveForward(gateway string, status int, d time.Duration) {
	if m == nil || m.forwardDuration == nil {
		return
	}
	gateway = normalizeLabel(gateway)
	m.forwardDuration.WithLabelValues(gateway).Observe(d.Seconds())
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.forwardResponses.WithLabelValues(gateway, label).Inc()
}

func (m *PaymentMetrics) IncWebhookFallback(gateway string) {
	if m == nil || m.webhookFallbacks == nil {
		return
	}
	m.webhookFallbacks.WithLabelValues(normalizeLabel(gateway)).Inc()
}

func (m *PaymentMetrics) IncDispatch(method, outcome string) {
	if m == nil || m.dispatches == nil {
		return
	}
	m.dispatches.WithLabelValues(normalizeLabel(method), normalizeLabel(outcome)).Inc()
}
