package outreach

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedGenerator fails for the kinds listed in failKinds and otherwise
// echoes the kind back as output.
type scriptedGenerator struct {
	failKinds map[string]bool
	prompts   map[string]string
}

func (s *scriptedGenerator) Generate(ctx context.Context, kind, prompt string) (string, error) {
	if s.prompts == nil {
		s.prompts = make(map[string]string)
	}
	s.prompts[kind] = prompt
	if s.failKinds[kind] {
		return "", errors.New("llm unavailable")
	}
	return "generated " + kind, nil
}

func TestGenerate(t *testing.T) {
	gen := &scriptedGenerator{}

	c, err := Generate(context.Background(), gen, "Sweet Crumbs", "Pain Point: slow checkout", "https://cal.example/me")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.EmailVariations != "generated emails" {
		t.Errorf("unexpected email variations %q", c.EmailVariations)
	}
	if c.FollowUps != "generated followups" {
		t.Errorf("unexpected follow-ups %q", c.FollowUps)
	}
	if c.MultiChannel != "generated multichannel" {
		t.Errorf("unexpected multi-channel %q", c.MultiChannel)
	}

	if !strings.Contains(gen.prompts["emails"], "CTA: https://cal.example/me") {
		t.Error("email prompt missing meeting link")
	}
	if !strings.Contains(gen.prompts["followups"], "FOLLOW-UP 3 (Day 14):") {
		t.Error("follow-up prompt missing Day 14 step")
	}
	if !strings.Contains(gen.prompts["multichannel"], "Meeting Link: https://cal.example/me") {
		t.Error("multi-channel prompt missing meeting link")
	}
	for kind, prompt := range gen.prompts {
		if !strings.Contains(prompt, "Sweet Crumbs") {
			t.Errorf("%s prompt missing company name", kind)
		}
	}
}

func TestGenerate_PartialFailure(t *testing.T) {
	gen := &scriptedGenerator{failKinds: map[string]bool{"followups": true}}

	c, err := Generate(context.Background(), gen, "Sweet Crumbs", "pain", "link")
	if err == nil {
		t.Fatal("expected the follow-up failure to surface")
	}
	if !strings.Contains(err.Error(), "follow-up sequence for Sweet Crumbs") {
		t.Errorf("unexpected error %v", err)
	}

	// The other channels still produced copy.
	if c.EmailVariations == "" || c.MultiChannel == "" {
		t.Errorf("surviving copy must be kept, got %+v", c)
	}
	if c.FollowUps != "" {
		t.Errorf("failed channel must stay empty, got %q", c.FollowUps)
	}
}

func TestGenerate_AllFail(t *testing.T) {
	gen := &scriptedGenerator{failKinds: map[string]bool{"emails": true, "followups": true, "multichannel": true}}

	_, err := Generate(context.Background(), gen, "Acme", "pain", "link")
	if err == nil {
		t.Fatal("expected joined errors")
	}
	for _, fragment := range []string{"email variations", "follow-up sequence", "multi-channel outreach"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error missing %q: %v", fragment, err)
		}
	}
}
