package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_search_requests_total",
			Help: "Total number of search API requests executed",
		},
		[]string{"kind", "status"},
	)

	ScrapeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_scrape_requests_total",
			Help: "Total number of candidate website fetches",
		},
		[]string{"status", "blocked"},
	)

	ScrapeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospect_scrape_duration_seconds",
			Help:    "Duration of candidate website fetches in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 8},
		},
		[]string{"domain"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_llm_requests_total",
			Help: "Total number of language model invocations",
		},
		[]string{"kind", "status"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospect_llm_request_duration_seconds",
			Help:    "Duration of language model invocations in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"kind"},
	)

	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_candidates_total",
			Help: "Candidates processed by the pipeline, by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordCandidate tracks the qualification outcome for one search hit.
// Outcomes: accepted, duplicate, blocked, excluded, no_contact, low_score,
// no_domain.
func RecordCandidate(outcome string) {
	CandidatesTotal.WithLabelValues(outcome).Inc()
}

// Server encapsulates an HTTP server for Prometheus metrics.
type Server struct {
	srv *http.Server
}

// Start begins listening on the specified port and exposes /metrics.
func Start(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		// Suppress the error from intentional shutdown
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server failed: %v\n", err)
		}
	}()

	return &Server{srv: srv}
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
