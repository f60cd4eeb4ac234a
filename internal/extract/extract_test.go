package extract

import (
	"reflect"
	"testing"
)

func TestEmails(t *testing.T) {
	text := "Reach us at sales@acme.com or support@acme.com today, again sales@acme.com"
	got := Emails(text)
	want := []string{"sales@acme.com", "support@acme.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Emails() = %v, want %v", got, want)
	}
}

func TestEmails_None(t *testing.T) {
	if got := Emails("no contact information here"); len(got) != 0 {
		t.Errorf("expected no emails, got %v", got)
	}
}

func TestPhones(t *testing.T) {
	text := "Call +1 555-123-4567, or 020 7946 0958, today"
	got := Phones(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 phone candidates, got %v", got)
	}
	if got[0] != "+1 555-123-4567" {
		t.Errorf("expected first phone %q, got %q", "+1 555-123-4567", got[0])
	}
}

func TestPhones_Dedup(t *testing.T) {
	got := Phones("+1 555-123-4567, and again +1 555-123-4567,")
	if len(got) != 1 {
		t.Errorf("expected 1 phone after dedup, got %v", got)
	}
}

func TestCompanySize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"enterprise headcount", "We have 600 employees", SizeEnterprise},
		{"medium headcount", "a team of 200 employees worldwide", SizeMedium},
		{"small headcount", "50 employees strong", SizeSmall},
		{"headcount with plus", "1200+ employees across 3 offices", SizeEnterprise},
		{"enterprise keyword", "a Fortune 500 partner", "Enterprise"},
		{"medium keyword", "our staff members love it", "Medium"},
		{"small keyword", "a boutique local shop", "Small"},
		{"nothing", "nothing relevant", SizeUnknown},
		{"case insensitive", "WE HAVE 600 EMPLOYEES", SizeEnterprise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompanySize(tt.text); got != tt.want {
				t.Errorf("CompanySize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCompanySize_KeywordPriority(t *testing.T) {
	// Enterprise indicators outrank medium and small ones.
	got := CompanySize("a global boutique with staff members")
	if got != "Enterprise" {
		t.Errorf("expected Enterprise to win priority, got %q", got)
	}
}

func TestTechnologies(t *testing.T) {
	text := "powered by Shopify, tracked with gtag, payments via Stripe"
	got := Technologies(text)
	want := []string{"Shopify", "Google Analytics", "Stripe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Technologies() = %v, want %v", got, want)
	}
}

func TestTechnologies_None(t *testing.T) {
	if got := Technologies("plain static site"); len(got) != 0 {
		t.Errorf("expected no technologies, got %v", got)
	}
}

func TestTechnologies_CaseInsensitive(t *testing.T) {
	got := Technologies("Built on WORDPRESS with wp-content assets")
	if len(got) != 1 || got[0] != "WordPress" {
		t.Errorf("expected WordPress, got %v", got)
	}
}
