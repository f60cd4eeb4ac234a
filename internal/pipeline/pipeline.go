// Package pipeline drives one lead-generation run: SERP discovery,
// per-candidate qualification and enrichment, hybrid scoring, and outreach
// generation, assembling the final ordered lead table.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FranksOps/prospect/internal/config"
	"github.com/FranksOps/prospect/internal/lead"
	"github.com/FranksOps/prospect/internal/llm"
	"github.com/FranksOps/prospect/internal/metrics"
	"github.com/FranksOps/prospect/internal/outreach"
	"github.com/FranksOps/prospect/internal/qualify"
	"github.com/FranksOps/prospect/internal/scrape"
	"github.com/FranksOps/prospect/internal/score"
	"github.com/FranksOps/prospect/internal/serp"
	"github.com/FranksOps/prospect/internal/signals"
	"github.com/FranksOps/prospect/internal/verify"
)

// Progress is invoked once per processed candidate so a shell can render
// advancement without the pipeline knowing about terminals.
type Progress func(processed, total, accepted int)

// PageFetcher retrieves one candidate website and extracts its signals.
// *scrape.Fetcher is the production implementation.
type PageFetcher interface {
	Visit(ctx context.Context, website string) scrape.Page
}

// Pipeline wires the run components together. All external collaborators
// are injected; the pipeline owns only the run-scoped dedup set and the
// accumulating result list.
type Pipeline struct {
	Search   serp.Provider
	Fetcher  PageFetcher
	Verifier verify.Verifier
	LLM      llm.Generator
	Logger   *slog.Logger
	Progress Progress
}

// Output is the product of one run.
type Output struct {
	Leads []*lead.Lead
	// Candidates is the number of search hits considered.
	Candidates int
	// Errs collects per-lead outreach failures. Outreach copy is part of
	// the deliverable, so these are surfaced rather than swallowed; the
	// affected leads still appear with whatever copy generated.
	Errs []error
}

// Run executes the pipeline for cfg. Qualification and scoring are fully
// deterministic given identical external responses; candidates are
// processed in search order and accepted leads preserve that order.
func (p *Pipeline) Run(ctx context.Context, cfg config.Run) (Output, error) {
	if p.Search == nil || p.Fetcher == nil || p.LLM == nil {
		return Output{}, fmt.Errorf("pipeline is missing a required component")
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	verifier := p.Verifier
	if verifier == nil {
		verifier = verify.Noop{}
	}

	results, err := serp.SearchBusinesses(ctx, p.Search, cfg.Industry, cfg.Location, cfg.SearchDepth)
	if err != nil {
		return Output{}, err
	}
	logger.Info("business search complete", "industry", cfg.Industry, "location", cfg.Location, "candidates", len(results))

	out := Output{Candidates: len(results)}
	excluded := cfg.Excluded()
	seenDomains := make(map[string]struct{})

	for i, r := range results {
		if len(out.Leads) >= cfg.MaxLeads {
			break
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		l, errs := p.processCandidate(ctx, cfg, verifier, logger, r, seenDomains, excluded)
		out.Errs = append(out.Errs, errs...)
		if l != nil {
			out.Leads = append(out.Leads, l)
		}

		if p.Progress != nil {
			p.Progress(i+1, len(results), len(out.Leads))
		}
	}

	logger.Info("run complete", "leads", len(out.Leads), "candidates", out.Candidates)
	return out, nil
}

// processCandidate applies the qualification gate and, for accepted
// candidates, runs enrichment, scoring, and outreach generation. A nil lead
// means the candidate was rejected at some stage.
func (p *Pipeline) processCandidate(ctx context.Context, cfg config.Run, verifier verify.Verifier, logger *slog.Logger, r serp.Result, seenDomains, excluded map[string]struct{}) (*lead.Lead, []error) {
	company := r.Title
	website := r.Link
	domain := qualify.Domain(website)

	switch {
	case domain == "":
		metrics.RecordCandidate("no_domain")
		return nil, nil
	case contains(seenDomains, domain):
		metrics.RecordCandidate("duplicate")
		return nil, nil
	case qualify.IsBlockedSite(website):
		metrics.RecordCandidate("blocked")
		return nil, nil
	case contains(excluded, domain):
		metrics.RecordCandidate("excluded")
		return nil, nil
	}
	seenDomains[domain] = struct{}{}

	logger.Debug("scraping candidate", "company", company, "domain", domain)
	page := p.Fetcher.Visit(ctx, website)

	email := qualify.FirstCompanyEmail(page.Emails, website)
	phone := qualify.FirstValidPhone(page.Phones)
	if email == "" && phone == "" {
		metrics.RecordCandidate("no_contact")
		return nil, nil
	}

	emailStatus := verify.StatusNotVerified
	emailScore := 0
	if email != "" && cfg.VerificationEnabled() {
		status, vScore := verifier.Verify(ctx, email)
		emailStatus = status
		emailScore = int(vScore)
	}

	// The three signal fetchers are independent and write disjoint fields,
	// so they fan out; everything joins before scoring.
	var (
		linkedin, keyContact string
		buying               []string
		social               signals.Social
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		linkedin, keyContact = signals.LinkedInProfile(gCtx, p.Search, company, cfg.Location)
		return nil
	})
	g.Go(func() error {
		buying = signals.BuyingSignals(gCtx, p.Search, company, cfg.Location)
		return nil
	})
	g.Go(func() error {
		social = signals.SocialPresence(gCtx, p.Search, company)
		return nil
	})
	_ = g.Wait() // fetchers degrade internally, never error

	buyingStr := signals.FormatSignals(buying)
	techStack := formatTechStack(page.TechStack)

	info := score.Info{
		Company:      company,
		Website:      website,
		Email:        email,
		EmailStatus:  emailStatus,
		Phone:        phone,
		CompanySize:  page.CompanySize,
		TechStack:    techStack,
		LinkedIn:     linkedin,
		KeyContact:   keyContact,
		BuyingSignal: buyingStr,
	}

	analysis, err := score.Analyze(ctx, p.LLM, info, cfg.Industry)
	if err != nil {
		// Analysis is advisory: without it the AI contribution falls back
		// to the documented default and the lead is scored on rules alone.
		logger.Warn("lead analysis unavailable", "company", company, "err", err)
		analysis = ""
	}

	leadScore := score.Hybrid(email != "", phone != "", len(buying) > 0, linkedin != "", score.AIScore(analysis))
	if leadScore < cfg.MinScore {
		metrics.RecordCandidate("low_score")
		return nil, nil
	}

	copyTexts, outreachErr := outreach.Generate(ctx, p.LLM, company, analysis, cfg.MeetingLink)
	var errs []error
	if outreachErr != nil {
		errs = append(errs, outreachErr)
	}

	metrics.RecordCandidate("accepted")

	if linkedin == "" {
		linkedin = social.LinkedIn
	}

	return &lead.Lead{
		Company:         company,
		Website:         website,
		Domain:          domain,
		Email:           email,
		EmailStatus:     emailStatus,
		EmailScore:      emailScore,
		Phone:           phone,
		CompanySize:     page.CompanySize,
		TechStack:       techStack,
		LinkedIn:        linkedin,
		Twitter:         social.Twitter,
		Facebook:        social.Facebook,
		KeyContact:      keyContact,
		BuyingSignals:   buyingStr,
		Score:           leadScore,
		Analysis:        analysis,
		EmailVariations: copyTexts.EmailVariations,
		FollowUps:       copyTexts.FollowUps,
		MultiChannel:    copyTexts.MultiChannel,
		MeetingLink:     cfg.MeetingLink,
		GeneratedAt:     time.Now(),
	}, errs
}

func formatTechStack(stack []string) string {
	if len(stack) == 0 {
		return "None detected"
	}
	return strings.Join(stack, ", ")
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
