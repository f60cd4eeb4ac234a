package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FranksOps/prospect/pkg/httpclient"
)

// StatusNotVerified is returned whenever verification is unavailable,
// unconfigured, or fails.
const StatusNotVerified = "Not Verified"

// Verifier reports a deliverability status and confidence score for an
// email address.
type Verifier interface {
	Verify(ctx context.Context, email string) (status string, score float64)
}

// Noop is the Verifier used when no verification key is configured. It
// performs no network calls.
type Noop struct{}

// Verify always reports the unverified status.
func (Noop) Verify(ctx context.Context, email string) (string, float64) {
	return StatusNotVerified, 0
}

const defaultHunterEndpoint = "https://api.hunter.io/v2/email-verifier"

// ensure Hunter implements Verifier
var _ Verifier = (*Hunter)(nil)

// Hunter verifies addresses through the Hunter.io email-verifier endpoint.
type Hunter struct {
	apiKey   string
	endpoint string
	client   *httpclient.Client
}

// Option customizes a Hunter verifier.
type Option func(*Hunter)

// WithEndpoint overrides the API endpoint, primarily for tests.
func WithEndpoint(endpoint string) Option {
	return func(h *Hunter) { h.endpoint = endpoint }
}

// NewHunter creates a Hunter.io verifier with a 5s timeout.
func NewHunter(apiKey string, opts ...Option) (*Hunter, error) {
	client, err := httpclient.New(httpclient.Config{
		Timeout:      5 * time.Second,
		MaxRedirects: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	h := &Hunter{
		apiKey:   apiKey,
		endpoint: defaultHunterEndpoint,
		client:   client,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

type hunterResponse struct {
	Data struct {
		Status string  `json:"status"`
		Score  float64 `json:"score"`
	} `json:"data"`
}

// Verify calls the verification endpoint. On any transport or parse failure
// it degrades to ("Not Verified", 0); verification is advisory and never
// blocks a lead.
func (h *Hunter) Verify(ctx context.Context, email string) (string, float64) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("api_key", h.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return StatusNotVerified, 0
	}

	resp, err := h.client.Do(ctx, req)
	if err != nil {
		return StatusNotVerified, 0
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusNotVerified, 0
	}

	var parsed hunterResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Data.Status == "" {
		return StatusNotVerified, 0
	}
	return parsed.Data.Status, parsed.Data.Score
}
