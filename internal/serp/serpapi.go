package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/FranksOps/prospect/internal/metrics"
	"github.com/FranksOps/prospect/pkg/httpclient"
)

const defaultEndpoint = "https://serpapi.com/search.json"

// ensure SerpAPI implements Provider
var _ Provider = (*SerpAPI)(nil)

// SerpAPI queries Google organic results through the SerpAPI service.
type SerpAPI struct {
	apiKey   string
	endpoint string
	client   *httpclient.Client
}

// Option customizes a SerpAPI provider.
type Option func(*SerpAPI)

// WithEndpoint overrides the API endpoint, primarily for tests.
func WithEndpoint(endpoint string) Option {
	return func(s *SerpAPI) { s.endpoint = endpoint }
}

// WithTimeout overrides the default 10s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *SerpAPI) {
		s.client, _ = httpclient.New(httpclient.Config{Timeout: d, MaxRedirects: 3})
	}
}

// NewSerpAPI creates a SerpAPI provider with a 10s timeout.
func NewSerpAPI(apiKey string, opts ...Option) (*SerpAPI, error) {
	client, err := httpclient.New(httpclient.Config{
		Timeout:      10 * time.Second,
		MaxRedirects: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s := &SerpAPI{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   client,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type serpResponse struct {
	OrganicResults []Result `json:"organic_results"`
}

// Search executes one Google search via SerpAPI and returns the organic
// results. num caps the result count, start is the pagination offset.
func (s *SerpAPI) Search(ctx context.Context, query string, num, start int) ([]Result, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	params.Set("num", strconv.Itoa(num))
	if start > 0 {
		params.Set("start", strconv.Itoa(start))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("organic", "error").Inc()
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SearchRequestsTotal.WithLabelValues("organic", strconv.Itoa(resp.StatusCode)).Inc()
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("organic", "error").Inc()
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("organic", "error").Inc()
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	metrics.SearchRequestsTotal.WithLabelValues("organic", "ok").Inc()
	return parsed.OrganicResults, nil
}
