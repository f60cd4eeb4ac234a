// Package score computes the hybrid lead score: deterministic rule-based
// points plus a capped contribution parsed from the model's analysis text.
package score

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/FranksOps/prospect/internal/llm"
)

// DefaultAIScore is used when the analysis text carries no parseable
// "Lead Score:" line. Alternate phrasings ("Score: 7") intentionally fall
// back to this default as well.
const DefaultAIScore = 5

// aiScoreCap bounds the model's contribution to the hybrid score.
const aiScoreCap = 3

var leadScoreRE = regexp.MustCompile(`Lead Score:\s*(\d+)`)

const analysisPrompt = `
Analyze this B2B lead and provide a detailed assessment.

Company Info:
%s

Industry: %s
Buying Signals: %s

Provide your analysis in this exact format:

Lead Quality: [Hot/Warm/Cold]
Lead Score: [1-10]
Pain Point: [One specific pain point]
Best Contact Time: [Suggested day and time]
Personalization Hook: [One unique fact about the company to use in outreach]
`

// Info aggregates everything known about a candidate before scoring.
type Info struct {
	Company      string
	Website      string
	Email        string
	EmailStatus  string
	Phone        string
	CompanySize  string
	TechStack    string
	LinkedIn     string
	KeyContact   string
	BuyingSignal string
}

// Block renders the company-info block embedded in the analysis prompt.
func (i Info) Block() string {
	return fmt.Sprintf(`
Company: %s
Website: %s
Email: %s (Status: %s)
Phone: %s
Size: %s
Tech Stack: %s
LinkedIn: %s
Key Contact: %s
Buying Signals: %s
`, i.Company, i.Website, i.Email, i.EmailStatus, i.Phone, i.CompanySize,
		i.TechStack, i.LinkedIn, i.KeyContact, i.BuyingSignal)
}

// Analyze asks the model for the five-line lead assessment and returns its
// output verbatim. Only the "Lead Score" line is ever machine-parsed; the
// rest is stored as the lead's analysis text.
func Analyze(ctx context.Context, gen llm.Generator, info Info, industry string) (string, error) {
	prompt := fmt.Sprintf(analysisPrompt, info.Block(), industry, info.BuyingSignal)
	analysis, err := gen.Generate(ctx, "analysis", prompt)
	if err != nil {
		return "", fmt.Errorf("lead analysis failed: %w", err)
	}
	return analysis, nil
}

// AIScore parses the model-assigned score from the analysis text, defaulting
// when the expected line is absent or malformed.
func AIScore(analysis string) int {
	m := leadScoreRE.FindStringSubmatch(analysis)
	if m == nil {
		return DefaultAIScore
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultAIScore
	}
	return n
}

// Hybrid combines rule-based points with the capped model score:
// +2 company email, +2 valid phone, +2 any buying signal, +1 LinkedIn,
// plus min(aiScore, 3), capped at 10. Always an integer in [0,10] for any
// aiScore, including out-of-range model output.
func Hybrid(hasEmail, hasPhone, hasSignals, hasLinkedIn bool, aiScore int) int {
	s := 0
	if hasEmail {
		s += 2
	}
	if hasPhone {
		s += 2
	}
	if hasSignals {
		s += 2
	}
	if hasLinkedIn {
		s++
	}

	ai := aiScore
	if ai < 0 {
		ai = 0
	}
	if ai > aiScoreCap {
		ai = aiScoreCap
	}
	s += ai

	if s > 10 {
		s = 10
	}
	return s
}
