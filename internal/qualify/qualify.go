package qualify

import (
	"net/url"
	"strings"
)

// freeEmailDomains are consumer mail providers; an address on one of these
// can never count as a company contact.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"outlook.com": {},
	"hotmail.com": {},
	"aol.com":     {},
	"icloud.com":  {},
}

// blockedMarkers identify review aggregators and social networks that show up
// in organic results but are never a candidate's own website.
var blockedMarkers = []string{
	"yelp",
	"clutch",
	"justdial",
	"indiamart",
	"yellowpages",
	"facebook.com",
	"instagram.com",
	"twitter.com",
}

// Domain returns the hostname of rawURL with a leading "www." stripped,
// or "" when the input does not parse as a URL with a host.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	return strings.TrimPrefix(host, "www.")
}

// IsCompanyEmail reports whether email plausibly belongs to the company
// behind website: not a free-mail address, and the website's domain is a
// substring of the email's domain (so sub.acme.com addresses match acme.com).
func IsCompanyEmail(email, website string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	emailDomain := strings.ToLower(email[at+1:])
	if _, free := freeEmailDomains[emailDomain]; free {
		return false
	}
	domain := strings.ToLower(Domain(website))
	return domain != "" && strings.Contains(emailDomain, domain)
}

// IsValidPhone reports whether the digit-only form of phone has a plausible
// length for an international number.
func IsValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// IsBlockedSite reports whether the website URL carries any blocklist marker.
func IsBlockedSite(website string) bool {
	lower := strings.ToLower(website)
	for _, marker := range blockedMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// FirstCompanyEmail returns the first extracted email that qualifies as a
// company contact for website, or "".
func FirstCompanyEmail(emails []string, website string) string {
	for _, e := range emails {
		if IsCompanyEmail(e, website) {
			return e
		}
	}
	return ""
}

// FirstValidPhone returns the first extracted phone with a plausible digit
// count, or "".
func FirstValidPhone(phones []string) string {
	for _, p := range phones {
		if IsValidPhone(p) {
			return p
		}
	}
	return ""
}
