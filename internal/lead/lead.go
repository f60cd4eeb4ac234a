// Package lead defines the durable output record of a pipeline run and its
// exported column set. Every export format serializes exactly these columns
// in this order.
package lead

import (
	"strconv"
	"time"
)

// GeneratedDateFormat is the timestamp layout used in the lead table.
const GeneratedDateFormat = "2006-01-02 15:04:05"

// Lead is one qualified, enriched, scored prospect. Created once per
// accepted candidate and immutable afterwards.
type Lead struct {
	Company         string
	Website         string
	Domain          string
	Email           string
	EmailStatus     string
	EmailScore      int
	Phone           string
	CompanySize     string
	TechStack       string
	LinkedIn        string
	Twitter         string
	Facebook        string
	KeyContact      string
	BuyingSignals   string
	Score           int
	Analysis        string
	EmailVariations string
	FollowUps       string
	MultiChannel    string
	MeetingLink     string
	GeneratedAt     time.Time
}

// Columns is the canonical header row, shared by every export format.
var Columns = []string{
	"Company",
	"Website",
	"Domain",
	"Email",
	"Email Status",
	"Email Score",
	"Phone",
	"Company Size",
	"Technology Stack",
	"LinkedIn",
	"Twitter",
	"Facebook",
	"Key Contact",
	"Buying Signals",
	"Lead Score",
	"Lead Analysis",
	"Email Variations (A/B)",
	"Follow-up Sequence",
	"Multi-channel Outreach",
	"Meeting Link",
	"Generated Date",
}

// Row renders the lead's column values in Columns order. Free-text model
// output is passed through byte-identical.
func (l *Lead) Row() []string {
	return []string{
		l.Company,
		l.Website,
		l.Domain,
		l.Email,
		l.EmailStatus,
		strconv.Itoa(l.EmailScore),
		l.Phone,
		l.CompanySize,
		l.TechStack,
		l.LinkedIn,
		l.Twitter,
		l.Facebook,
		l.KeyContact,
		l.BuyingSignals,
		strconv.Itoa(l.Score),
		l.Analysis,
		l.EmailVariations,
		l.FollowUps,
		l.MultiChannel,
		l.MeetingLink,
		l.GeneratedAt.Format(GeneratedDateFormat),
	}
}

// Record renders the lead as an ordered column-name to value map entry list
// for JSON export. Numeric columns stay numeric in JSON.
func (l *Lead) Record() map[string]any {
	return map[string]any{
		"Company":                l.Company,
		"Website":                l.Website,
		"Domain":                 l.Domain,
		"Email":                  l.Email,
		"Email Status":           l.EmailStatus,
		"Email Score":            l.EmailScore,
		"Phone":                  l.Phone,
		"Company Size":           l.CompanySize,
		"Technology Stack":       l.TechStack,
		"LinkedIn":               l.LinkedIn,
		"Twitter":                l.Twitter,
		"Facebook":               l.Facebook,
		"Key Contact":            l.KeyContact,
		"Buying Signals":         l.BuyingSignals,
		"Lead Score":             l.Score,
		"Lead Analysis":          l.Analysis,
		"Email Variations (A/B)": l.EmailVariations,
		"Follow-up Sequence":     l.FollowUps,
		"Multi-channel Outreach": l.MultiChannel,
		"Meeting Link":           l.MeetingLink,
		"Generated Date":         l.GeneratedAt.Format(GeneratedDateFormat),
	}
}
