package signals

import (
	"context"
	"fmt"
	"strings"

	"github.com/FranksOps/prospect/internal/serp"
)

// signalResultCap bounds how many organic results each signal query scans.
const signalResultCap = 5

// Social maps outreach channels to at most one profile URL each,
// first match wins per channel.
type Social struct {
	LinkedIn string
	Twitter  string
	Facebook string
}

// buyingSignalLabels maps a literal marker substring to its signal label,
// in the fixed order signals are reported.
var buyingSignalLabels = []struct {
	marker string
	label  string
}{
	{"hiring", "Currently Hiring"},
	{"funding", "Recently Funded"},
	{"expansion", "Expanding"},
}

// founderMarkers identify a key-contact result title.
var founderMarkers = []string{"founder", "ceo", "co-founder", "owner"}

// BuyingSignals searches for purchase-readiness indicators around a company.
// Any transport or parse failure yields the empty set; signals are
// best-effort color, never a reason to drop a candidate.
func BuyingSignals(ctx context.Context, p serp.Provider, company, location string) []string {
	query := fmt.Sprintf("%q hiring OR funding OR expansion", company)
	results, err := p.Search(ctx, query, signalResultCap, 0)
	if err != nil {
		return nil
	}

	found := make(map[string]bool, len(buyingSignalLabels))
	for _, r := range results {
		haystack := strings.ToLower(r.Title) + " " + strings.ToLower(r.Snippet)
		for _, bs := range buyingSignalLabels {
			if strings.Contains(haystack, bs.marker) {
				found[bs.label] = true
			}
		}
	}

	var out []string
	for _, bs := range buyingSignalLabels {
		if found[bs.label] {
			out = append(out, bs.label)
		}
	}
	return out
}

// FormatSignals renders a buying-signal set for the lead table; the empty
// set renders as "None".
func FormatSignals(signals []string) string {
	if len(signals) == 0 {
		return "None"
	}
	return strings.Join(signals, ", ")
}

// SocialPresence discovers a company's social profiles. Each result link is
// assigned to the first channel it matches; only the first occurrence per
// channel is kept. Failures yield the zero Social.
func SocialPresence(ctx context.Context, p serp.Provider, company string) Social {
	query := fmt.Sprintf("%q site:linkedin.com OR site:twitter.com OR site:facebook.com", company)
	results, err := p.Search(ctx, query, signalResultCap, 0)
	if err != nil {
		return Social{}
	}

	var social Social
	for _, r := range results {
		switch {
		case strings.Contains(r.Link, "linkedin.com/company") && social.LinkedIn == "":
			social.LinkedIn = r.Link
		case strings.Contains(r.Link, "twitter.com") && social.Twitter == "":
			social.Twitter = r.Link
		case strings.Contains(r.Link, "facebook.com") && social.Facebook == "":
			social.Facebook = r.Link
		}
	}
	return social
}

// LinkedInProfile looks up the company's LinkedIn page and a likely key
// contact. The first result link containing a company-page path wins; the
// first title naming a founder-like role becomes the key contact. Failures
// yield empty strings.
func LinkedInProfile(ctx context.Context, p serp.Provider, company, location string) (linkedin, keyContact string) {
	query := fmt.Sprintf("%q %s LinkedIn", company, location)
	results, err := p.Search(ctx, query, signalResultCap, 0)
	if err != nil {
		return "", ""
	}

	for _, r := range results {
		if linkedin == "" && strings.Contains(r.Link, "linkedin.com/company") {
			linkedin = r.Link
		}
		if keyContact == "" {
			title := strings.ToLower(r.Title)
			for _, marker := range founderMarkers {
				if strings.Contains(title, marker) {
					keyContact = r.Title
					break
				}
			}
		}
		if linkedin != "" && keyContact != "" {
			break
		}
	}
	return linkedin, keyContact
}
