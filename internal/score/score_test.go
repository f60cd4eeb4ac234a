package score

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	output string
	err    error
	prompt string
	kind   string
}

func (f *fakeGenerator) Generate(ctx context.Context, kind, prompt string) (string, error) {
	f.kind = kind
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestAIScore(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		want     int
	}{
		{"well formed", "Lead Quality: Hot\nLead Score: 8\nPain Point: slow site", 8},
		{"extra spaces", "Lead Score:   9", 9},
		{"missing line", "Lead Quality: Warm\nPain Point: none", DefaultAIScore},
		{"alternate phrasing falls back", "Score: 7", DefaultAIScore},
		{"empty", "", DefaultAIScore},
		{"out of range still parses", "Lead Score: 100", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AIScore(tt.analysis); got != tt.want {
				t.Errorf("AIScore(%q) = %d, want %d", tt.analysis, got, tt.want)
			}
		})
	}
}

func TestHybrid(t *testing.T) {
	tests := []struct {
		name                                       string
		hasEmail, hasPhone, hasSignals, hasLinkedIn bool
		aiScore                                    int
		want                                       int
	}{
		{"nothing", false, false, false, false, 0, 0},
		{"email only", true, false, false, false, 0, 2},
		{"all rules max ai", true, true, true, true, 3, 10},
		{"ai clamped high", false, false, false, false, 100, 3},
		{"ai clamped negative", true, false, false, false, -4, 2},
		{"cap at 10", true, true, true, true, 50, 10},
		{"default ai contributes 3", true, false, false, false, DefaultAIScore, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hybrid(tt.hasEmail, tt.hasPhone, tt.hasSignals, tt.hasLinkedIn, tt.aiScore)
			if got != tt.want {
				t.Errorf("Hybrid() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHybrid_AlwaysInRange(t *testing.T) {
	// Sweep every boolean combination against hostile model scores.
	for mask := 0; mask < 16; mask++ {
		for _, ai := range []int{-100, -1, 0, 1, 3, 5, 10, 100} {
			got := Hybrid(mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0, ai)
			if got < 0 || got > 10 {
				t.Fatalf("Hybrid(mask=%d, ai=%d) = %d, out of [0,10]", mask, ai, got)
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	gen := &fakeGenerator{output: "Lead Quality: Hot\nLead Score: 7"}
	info := Info{
		Company:      "Sweet Crumbs",
		Website:      "https://sweetcrumbs.com",
		Email:        "contact@sweetcrumbs.com",
		EmailStatus:  "Not Verified",
		CompanySize:  "Small (1-50)",
		TechStack:    "Shopify",
		BuyingSignal: "Currently Hiring",
	}

	analysis, err := Analyze(context.Background(), gen, info, "Bakeries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis != gen.output {
		t.Errorf("analysis must be stored verbatim, got %q", analysis)
	}
	if gen.kind != "analysis" {
		t.Errorf("expected kind analysis, got %q", gen.kind)
	}

	for _, fragment := range []string{
		"Company: Sweet Crumbs",
		"Email: contact@sweetcrumbs.com (Status: Not Verified)",
		"Industry: Bakeries",
		"Buying Signals: Currently Hiring",
		"Lead Quality: [Hot/Warm/Cold]",
	} {
		if !strings.Contains(gen.prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestAnalyze_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	if _, err := Analyze(context.Background(), gen, Info{}, "Bakeries"); err == nil {
		t.Fatal("expected error from failing generator")
	}
}
