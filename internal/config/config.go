// Package config defines the per-run configuration of the pipeline. The CLI
// shell assembles a Run from flags, environment, and an optional config
// file; the orchestrator receives it as an explicit value, never as ambient
// state.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Run holds the input parameters for one pipeline execution.
type Run struct {
	// Credentials
	SerpAPIKey   string `mapstructure:"serpapi_key"`
	GroqAPIKey   string `mapstructure:"groq_api_key"`
	HunterAPIKey string `mapstructure:"hunter_api_key"` // optional, enables email verification

	// Search parameters
	Industry    string `mapstructure:"industry"`
	Location    string `mapstructure:"location"`
	MaxLeads    int    `mapstructure:"max_leads"`
	MinScore    int    `mapstructure:"min_score"`
	SearchDepth int    `mapstructure:"search_depth"` // pages, 10 results each

	// Filtering and outreach
	ExcludeDomains []string `mapstructure:"exclude_domains"`
	MeetingLink    string   `mapstructure:"meeting_link"`

	// Output
	Formats   []string `mapstructure:"formats"`
	OutputDir string   `mapstructure:"output_dir"`

	// Observability
	MetricsPort int `mapstructure:"metrics_port"` // 0 disables the /metrics server
}

var validFormats = map[string]struct{}{
	"excel":  {},
	"xlsx":   {},
	"csv":    {},
	"json":   {},
	"sqlite": {},
}

// Defaults fills unset fields with the documented defaults.
func (r *Run) Defaults() {
	if r.MaxLeads == 0 {
		r.MaxLeads = 20
	}
	if r.MinScore == 0 {
		r.MinScore = 5
	}
	if r.SearchDepth == 0 {
		r.SearchDepth = 3
	}
	if len(r.Formats) == 0 {
		r.Formats = []string{"csv"}
	}
	if r.OutputDir == "" {
		r.OutputDir = "."
	}
}

// Validate checks credentials and parameter ranges. A missing required API
// key is fatal at this boundary; the pipeline never starts.
func (r *Run) Validate() error {
	var errs []error

	if r.SerpAPIKey == "" {
		errs = append(errs, errors.New("serpapi key is required"))
	}
	if r.GroqAPIKey == "" {
		errs = append(errs, errors.New("groq api key is required"))
	}
	if r.Industry == "" {
		errs = append(errs, errors.New("industry is required"))
	}
	if r.Location == "" {
		errs = append(errs, errors.New("location is required"))
	}
	if r.MaxLeads < 5 || r.MaxLeads > 50 {
		errs = append(errs, fmt.Errorf("max_leads must be in [5,50], got %d", r.MaxLeads))
	}
	if r.MinScore < 1 || r.MinScore > 10 {
		errs = append(errs, fmt.Errorf("min_score must be in [1,10], got %d", r.MinScore))
	}
	if r.SearchDepth < 1 || r.SearchDepth > 5 {
		errs = append(errs, fmt.Errorf("search_depth must be in [1,5], got %d", r.SearchDepth))
	}
	for _, f := range r.Formats {
		if _, ok := validFormats[strings.ToLower(f)]; !ok {
			errs = append(errs, fmt.Errorf("unknown export format %q", f))
		}
	}

	return errors.Join(errs...)
}

// Excluded returns the exclusion set, lowercased and trimmed. Entries come
// from the CLI one domain per line or per flag occurrence.
func (r *Run) Excluded() map[string]struct{} {
	out := make(map[string]struct{}, len(r.ExcludeDomains))
	for _, d := range r.ExcludeDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			out[d] = struct{}{}
		}
	}
	return out
}

// VerificationEnabled reports whether an email-verification key was supplied.
func (r *Run) VerificationEnabled() bool {
	return r.HunterAPIKey != ""
}
