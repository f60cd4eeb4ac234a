package scrape

import (
	"bytes"
	"net/http"
	"strings"
)

// detect examines a fetch result for bot-protection challenge signatures and
// updates Blocked/BlockSource in place. Only the vendors commonly fronting
// small-business sites are checked.
func detect(res *Result, headers http.Header) {
	if res == nil {
		return
	}

	if ok, src := detectCloudflare(res, headers); ok {
		res.Blocked = true
		res.BlockSource = src
		return
	}
	if ok, src := detectAkamai(res, headers); ok {
		res.Blocked = true
		res.BlockSource = src
		return
	}
}

// detectCloudflare looks for common Cloudflare challenge/block signatures.
func detectCloudflare(res *Result, headers http.Header) (bool, string) {
	// Status codes 403 or 503 are common for CF challenges
	if res.StatusCode != http.StatusForbidden && res.StatusCode != http.StatusServiceUnavailable {
		return false, ""
	}

	if strings.Contains(strings.ToLower(headers.Get("Server")), "cloudflare") {
		return true, "Cloudflare"
	}

	if bytes.Contains(res.Body, []byte("cf-browser-verification")) ||
		bytes.Contains(res.Body, []byte("cf-turnstile")) ||
		bytes.Contains(res.Body, []byte("Attention Required! | Cloudflare")) {
		return true, "Cloudflare"
	}
	return false, ""
}

// detectAkamai looks for Akamai Bot Manager signatures.
func detectAkamai(res *Result, headers http.Header) (bool, string) {
	if res.StatusCode != http.StatusForbidden {
		return false, ""
	}

	if strings.Contains(strings.ToLower(headers.Get("Server")), "akamai") {
		return true, "Akamai"
	}

	// Akamai often returns a generic "Reference #" block page
	if bytes.Contains(res.Body, []byte("Reference #")) && bytes.Contains(res.Body, []byte("Access Denied")) {
		return true, "Akamai"
	}
	return false, ""
}
