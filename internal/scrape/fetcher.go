package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/FranksOps/prospect/internal/fingerprint"
	"github.com/FranksOps/prospect/internal/metrics"
	"github.com/FranksOps/prospect/internal/qualify"
	"github.com/FranksOps/prospect/pkg/httpclient"
	"github.com/FranksOps/prospect/pkg/useragent"
)

// Result captures the outcome of one candidate-website fetch. Transport
// failures land in Error rather than being returned, so the pipeline can
// degrade a candidate instead of aborting it.
type Result struct {
	ID          string
	URL         string
	StatusCode  int
	Body        []byte
	Duration    time.Duration
	Blocked     bool
	BlockSource string // e.g. "Cloudflare", "Akamai"
	FetchedAt   time.Time
	Error       string // non-empty if the fetch failed before an HTTP response
}

// FetchConfig configures candidate-website fetches.
type FetchConfig struct {
	Timeout     time.Duration
	Fingerprint fingerprint.Profile
	UAPool      *useragent.Pool
}

// Fetcher performs single-attempt GETs against candidate websites.
type Fetcher struct {
	config FetchConfig
	client *httpclient.Client
}

// NewFetcher initializes a Fetcher. A single client is held across requests
// so connections are pooled for the lifetime of the run.
func NewFetcher(cfg FetchConfig) (*Fetcher, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.UAPool == nil {
		cfg.UAPool = useragent.NewPool(nil)
	}
	if string(cfg.Fingerprint) == "" {
		cfg.Fingerprint = fingerprint.ProfileChrome
	}

	transport, err := fingerprint.Transport(cfg.Fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to setup transport: %w", err)
	}

	client, err := httpclient.New(httpclient.Config{
		Timeout:      cfg.Timeout,
		MaxRedirects: 5,
		Transport:    transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Fetcher{config: cfg, client: client}, nil
}

// Fetch executes a GET against the target URL, tracking duration and
// capturing the response into a Result. The returned error is always nil;
// failures are recorded in Result.Error.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*Result, error) {
	start := time.Now()

	result := &Result{
		ID:        uuid.New().String(),
		URL:       targetURL,
		FetchedAt: start.UTC(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		result.Duration = time.Since(start)
		f.record(result)
		return result, nil
	}

	req.Header.Set("User-Agent", f.config.UAPool.GetSequential())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(ctx, req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		result.Duration = time.Since(start)
		f.record(result)
		return result, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read body: %v", err)
	}

	result.StatusCode = resp.StatusCode
	result.Body = body
	result.Duration = time.Since(start)

	// Identify whether a bot-protection challenge intercepted us. Purely
	// diagnostic: a blocked page simply extracts no contacts.
	detect(result, resp.Header)

	f.record(result)
	return result, nil
}

func (f *Fetcher) record(res *Result) {
	status := "ok"
	if res.Error != "" {
		status = "error"
	}
	blocked := "false"
	if res.Blocked {
		blocked = "true"
	}
	metrics.ScrapeRequestsTotal.WithLabelValues(status, blocked).Inc()
	metrics.ScrapeDuration.WithLabelValues(qualify.Domain(res.URL)).Observe(res.Duration.Seconds())
}
