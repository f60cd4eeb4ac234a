package scrape

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/FranksOps/prospect/internal/extract"
)

// Page holds the text and structured signals extracted from one website
// visit. It feeds the lead record and is discarded afterwards.
type Page struct {
	Emails      []string
	Phones      []string
	Text        string
	CompanySize string
	TechStack   []string
}

// emptyPage is the documented fallback when a fetch or parse fails.
func emptyPage() Page {
	return Page{CompanySize: extract.SizeUnknown}
}

// Visit fetches the website and extracts contact and firmographic signals.
// Any transport or parse failure yields the empty page; the candidate then
// stands or falls on the contact-qualification gate.
func (f *Fetcher) Visit(ctx context.Context, website string) Page {
	res, _ := f.Fetch(ctx, website)
	if res == nil || res.Error != "" || len(res.Body) == 0 {
		return emptyPage()
	}
	return ParsePage(res.Body)
}

// ParsePage flattens an HTML document to space-separated text and derives
// the structured signals from it. Script bodies stay in the scanned text:
// technology fingerprints such as wp-content paths or gtag snippets live
// there, not in prose.
func ParsePage(body []byte) Page {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return emptyPage()
	}

	var sb strings.Builder
	for _, node := range doc.Selection.Nodes {
		collectText(node, &sb)
	}
	text := sb.String()

	return Page{
		Emails:      extract.Emails(text),
		Phones:      extract.Phones(text),
		Text:        text,
		CompanySize: extract.CompanySize(text),
		TechStack:   extract.Technologies(text),
	}
}

// collectText appends every text node under n, separated by single spaces.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		trimmed := strings.TrimSpace(n.Data)
		if trimmed != "" {
			sb.WriteString(trimmed)
			sb.WriteString(" ")
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
