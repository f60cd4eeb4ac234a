package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/FranksOps/prospect/internal/lead"
)

// Summary contains aggregated metrics about one lead-generation run.
type Summary struct {
	TotalLeads     int
	AverageScore   float64
	VerifiedEmails int // leads with Email Status == "valid"
	WithSignals    int // leads with any buying signal
	Candidates     int // search hits considered
}

// GenerateSummary computes run-level aggregates over the final lead set.
func GenerateSummary(leads []*lead.Lead, candidates int) Summary {
	s := Summary{
		TotalLeads: len(leads),
		Candidates: candidates,
	}

	if len(leads) == 0 {
		return s
	}

	total := 0
	for _, l := range leads {
		total += l.Score
		if l.EmailStatus == "valid" {
			s.VerifiedEmails++
		}
		if l.BuyingSignals != "None" && l.BuyingSignals != "" {
			s.WithSignals++
		}
	}
	s.AverageScore = float64(total) / float64(len(leads))

	return s
}

// WriteJSON writes the summary to the provided writer in JSON format.
func WriteJSON(w io.Writer, summary Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

// WriteText writes a human-readable text summary to the provided writer.
func WriteText(w io.Writer, summary Summary) error {
	const textTmpl = `Prospect Run Summary
--------------------
Candidates Considered: {{.Candidates}}
Total Leads:           {{.TotalLeads}}
Avg Lead Score:        {{printf "%.1f" .AverageScore}}/10
Verified Emails:       {{.VerifiedEmails}}
With Buying Signals:   {{.WithSignals}}
`

	t, err := template.New("textReport").Parse(textTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := t.Execute(w, summary); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	return nil
}
