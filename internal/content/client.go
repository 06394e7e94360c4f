package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/modeststyle-backend/pkg/errors"
)

const responseBodyReadLimit int64 = 16 << 20

// ErrNotConfigured is returned when no real CMS project is configured.
var ErrNotConfigured = errors.New("cms not configured")

// Client runs read-only GROQ queries against the CMS HTTP query API.
// Consecutive failures open a circuit breaker that short-circuits further calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    string
	apiVersion string
	configured bool
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// Option configures optional client behavior.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL points the client at a different query host, e.g. a local fake.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

func NewClient(cfg config.CMSConfig, opts ...Option) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    fmt.Sprintf("https://%s.%s", strings.TrimSpace(cfg.ProjectID), host),
		dataset:    cfg.Dataset,
		apiVersion: strings.TrimPrefix(cfg.APIVersion, "v"),
		configured: cfg.IsConfigured(),
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "cms",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.configured
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs groq with params and decodes the result into dst. A null result
// leaves dst untouched and reports found=false.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, dst any) (bool, error) {
	if !c.IsConfigured() {
		return false, ErrNotConfigured
	}
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, groq, params)
	})
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cms query failed")
	}

	var env queryEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cms response")
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(env.Result, dst); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cms result")
	}
	return true, nil
}

func (c *Client) fetch(ctx context.Context, groq string, params map[string]any) ([]byte, error) {
	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, url.PathEscape(c.dataset), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build cms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute cms request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, fmt.Errorf("read cms response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cms status %d", resp.StatusCode)
	}
	return body, nil
}
