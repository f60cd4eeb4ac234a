package serp

import (
	"context"
	"fmt"
)

// Result represents one organic search hit. Title doubles as the candidate
// company name and Link as its website when discovering businesses.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Provider abstracts a search engine that returns organic results for a
// query. num caps the result count; start is the pagination offset.
type Provider interface {
	Search(ctx context.Context, query string, num, start int) ([]Result, error)
}

// SearchBusinesses fetches up to pages result pages (10 hits each) of
// business listings for the industry/location pair and concatenates them in
// order. A page that fails is skipped; only a run where every page fails
// returns the last error, so a transient miss never aborts discovery.
func SearchBusinesses(ctx context.Context, p Provider, industry, location string, pages int) ([]Result, error) {
	query := fmt.Sprintf("%s in %s", industry, location)

	var all []Result
	var lastErr error
	failed := 0
	for page := 0; page < pages; page++ {
		results, err := p.Search(ctx, query, 10, page*10)
		if err != nil {
			lastErr = err
			failed++
			continue
		}
		all = append(all, results...)
	}

	if failed == pages && lastErr != nil {
		return nil, fmt.Errorf("business search failed: %w", lastErr)
	}
	return all, nil
}
