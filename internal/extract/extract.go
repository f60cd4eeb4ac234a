package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRE    = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRE    = regexp.MustCompile(`\+?\d[\d\s\-]{7,15}`)
	employeeRE = regexp.MustCompile(`(\d+)\+?\s*employees`)
)

// Company size labels as rendered in the lead table. The employee-count
// path produces the bucketed labels; the keyword fallback produces the
// bare words.
const (
	SizeUnknown    = "Unknown"
	SizeSmall      = "Small (1-50)"
	SizeMedium     = "Medium (50-500)"
	SizeEnterprise = "Enterprise (500+)"
)

// sizeKeywords maps a fallback label to indicator phrases. Checked in
// fixed priority order: enterprise, then medium, then small.
var sizeKeywords = []struct {
	label    string
	keywords []string
}{
	{"Enterprise", []string{"fortune 500", "global", "worldwide", "international"}},
	{"Medium", []string{"team of", "employees", "staff members"}},
	{"Small", []string{"family owned", "local", "boutique"}},
}

// technologies maps a technology name to lowercase keyword substrings that
// betray its presence in page markup or copy.
var technologies = []struct {
	name     string
	keywords []string
}{
	{"WordPress", []string{"wp-content", "wordpress"}},
	{"Shopify", []string{"shopify", "myshopify"}},
	{"React", []string{"react", "reactjs"}},
	{"Angular", []string{"angular", "angularjs"}},
	{"Salesforce", []string{"salesforce"}},
	{"HubSpot", []string{"hubspot"}},
	{"Google Analytics", []string{"google-analytics", "gtag"}},
	{"Mailchimp", []string{"mailchimp"}},
	{"Stripe", []string{"stripe"}},
	{"PayPal", []string{"paypal"}},
}

// Emails returns all email-shaped substrings in text, deduplicated in
// first-seen order.
func Emails(text string) []string {
	return dedup(emailRE.FindAllString(text, -1))
}

// Phones returns all loosely phone-shaped substrings (optional leading '+',
// then 8-16 digits interspersed with spaces or hyphens), deduplicated.
// Validity is decided later by the qualifier.
func Phones(text string) []string {
	return dedup(phoneRE.FindAllString(text, -1))
}

// CompanySize classifies page text into a size label. An explicit
// "<N> employees" mention wins and is bucketed by headcount; otherwise the
// first keyword set with any match decides; otherwise Unknown.
func CompanySize(text string) string {
	lower := strings.ToLower(text)

	if m := employeeRE.FindStringSubmatch(lower); m != nil {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case count > 500:
				return SizeEnterprise
			case count > 50:
				return SizeMedium
			default:
				return SizeSmall
			}
		}
	}

	for _, set := range sizeKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.label
			}
		}
	}
	return SizeUnknown
}

// Technologies returns the names of known technologies whose keywords appear
// in the lowercased text, in the fixed catalog order. Empty slice when
// nothing matches; the lead table renders that as "None detected".
func Technologies(text string) []string {
	lower := strings.ToLower(text)

	var stack []string
	for _, tech := range technologies {
		for _, kw := range tech.keywords {
			if strings.Contains(lower, kw) {
				stack = append(stack, tech.name)
				break
			}
		}
	}
	return stack
}

func dedup(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
