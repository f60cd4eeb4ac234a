// Package outreach generates the LLM-authored outreach copy attached to a
// qualified lead: cold-email A/B variants, a three-step follow-up sequence,
// and multi-channel messages. Outputs are stored verbatim, never parsed.
package outreach

import (
	"context"
	"errors"
	"fmt"

	"github.com/FranksOps/prospect/internal/llm"
)

const emailVariationsPrompt = `
Write 2 different cold email variations for A/B testing.

Company: %s
Pain Point: %s
CTA: %s

Format:
EMAIL A:
[Subject line]
[Body under 120 words]

EMAIL B:
[Different subject line]
[Different body under 120 words]
`

const followUpPrompt = `
Create a 3-email follow-up sequence.

Company: %s
Pain Point: %s

Format:
FOLLOW-UP 1 (Day 3):
[Subject]
[Body - 80 words max]

FOLLOW-UP 2 (Day 7):
[Subject]
[Body - 80 words max]

FOLLOW-UP 3 (Day 14):
[Subject]
[Body - 80 words max]
`

const multiChannelPrompt = `
Create outreach messages for multiple channels.

Company: %s
Pain Point: %s

Generate:
1. WhatsApp Message (50 words)
2. SMS Message (25 words)
3. LinkedIn Message (80 words)

Meeting Link: %s
`

// Copy holds the generated outreach text for one lead. Fields that failed to
// generate stay empty; the matching errors are reported by Generate.
type Copy struct {
	EmailVariations string
	FollowUps       string
	MultiChannel    string
}

// Generate runs the three independent outreach calls for a lead. The pain
// point is the scorer's full analysis text; the model picks the relevant
// line itself. Outreach text is part of the deliverable, so failures are
// returned (joined) rather than swallowed, alongside whatever copy did
// generate.
func Generate(ctx context.Context, gen llm.Generator, company, painPoint, meetingLink string) (Copy, error) {
	var c Copy
	var errs []error

	emails, err := gen.Generate(ctx, "emails", fmt.Sprintf(emailVariationsPrompt, company, painPoint, meetingLink))
	if err != nil {
		errs = append(errs, fmt.Errorf("email variations for %s: %w", company, err))
	} else {
		c.EmailVariations = emails
	}

	followUps, err := gen.Generate(ctx, "followups", fmt.Sprintf(followUpPrompt, company, painPoint))
	if err != nil {
		errs = append(errs, fmt.Errorf("follow-up sequence for %s: %w", company, err))
	} else {
		c.FollowUps = followUps
	}

	multi, err := gen.Generate(ctx, "multichannel", fmt.Sprintf(multiChannelPrompt, company, painPoint, meetingLink))
	if err != nil {
		errs = append(errs, fmt.Errorf("multi-channel outreach for %s: %w", company, err))
	} else {
		c.MultiChannel = multi
	}

	return c, errors.Join(errs...)
}
