package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FranksOps/prospect/internal/export"
	"github.com/FranksOps/prospect/internal/llm"
	"github.com/FranksOps/prospect/internal/metrics"
	"github.com/FranksOps/prospect/internal/pipeline"
	"github.com/FranksOps/prospect/internal/report"
	"github.com/FranksOps/prospect/internal/scrape"
	"github.com/FranksOps/prospect/internal/serp"
	"github.com/FranksOps/prospect/internal/verify"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run one lead-generation pipeline and export the results",
		RunE:  runGenerate,
	}

	flags := cmd.Flags()
	flags.String("industry", "", "target industry, e.g. \"Real Estate Agents\"")
	flags.String("location", "", "target location, e.g. \"New York\"")
	flags.Int("max-leads", 20, "maximum leads to generate [5,50]")
	flags.Int("min-score", 5, "minimum lead score to keep [1,10]")
	flags.Int("search-depth", 3, "search pages to fetch, 10 results each [1,5]")
	flags.StringSlice("exclude-domains", nil, "domains to exclude (repeatable)")
	flags.String("meeting-link", "https://calendly.com/your-name/meeting", "meeting link placed in outreach copy")
	flags.StringSlice("formats", []string{"csv"}, "export formats: excel, csv, json, sqlite")
	flags.String("output-dir", ".", "directory for export artifacts")
	flags.Int("metrics-port", 0, "expose Prometheus /metrics on this port (0 = off)")

	_ = viper.BindPFlag("industry", flags.Lookup("industry"))
	_ = viper.BindPFlag("location", flags.Lookup("location"))
	_ = viper.BindPFlag("max_leads", flags.Lookup("max-leads"))
	_ = viper.BindPFlag("min_score", flags.Lookup("min-score"))
	_ = viper.BindPFlag("search_depth", flags.Lookup("search-depth"))
	_ = viper.BindPFlag("exclude_domains", flags.Lookup("exclude-domains"))
	_ = viper.BindPFlag("meeting_link", flags.Lookup("meeting-link"))
	_ = viper.BindPFlag("formats", flags.Lookup("formats"))
	_ = viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("metrics_port", flags.Lookup("metrics-port"))

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsPort > 0 {
		srv := metrics.Start(cfg.MetricsPort)
		defer srv.Stop(context.Background())
	}

	provider, err := serp.NewSerpAPI(cfg.SerpAPIKey)
	if err != nil {
		return err
	}
	fetcher, err := scrape.NewFetcher(scrape.FetchConfig{})
	if err != nil {
		return err
	}
	var verifier verify.Verifier = verify.Noop{}
	if cfg.VerificationEnabled() {
		verifier, err = verify.NewHunter(cfg.HunterAPIKey)
		if err != nil {
			return err
		}
	}
	generator := llm.New(llm.Config{APIKey: cfg.GroqAPIKey})

	progress, _ := pterm.DefaultProgressbar.
		WithTitle("Qualifying candidates").
		WithRemoveWhenDone(true).
		Start()

	p := &pipeline.Pipeline{
		Search:   provider,
		Fetcher:  fetcher,
		Verifier: verifier,
		LLM:      generator,
		Logger:   logger,
		Progress: func(processed, total, accepted int) {
			if progress.Total != total {
				progress.Total = total
			}
			progress.Increment()
			progress.UpdateTitle(pterm.Sprintf("Processing %d/%d - %d qualified", processed, total, accepted))
		},
	}

	out, err := p.Run(ctx, cfg)
	if _, stopErr := progress.Stop(); stopErr != nil {
		logger.Debug("progress bar stop failed", "err", stopErr)
	}
	if err != nil {
		return err
	}

	for _, e := range out.Errs {
		pterm.Warning.Println(e)
	}

	if len(out.Leads) == 0 {
		pterm.Warning.Println("No qualifying leads found. Try adjusting your filters or search criteria.")
		return nil
	}

	summary := report.GenerateSummary(out.Leads, out.Candidates)
	pterm.DefaultSection.Println("Run Summary")
	if err := report.WriteText(os.Stdout, summary); err != nil {
		return err
	}

	now := time.Now()
	for _, format := range cfg.Formats {
		exporter, err := export.ForFormat(strings.ToLower(format))
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.OutputDir, export.Filename(exporter, now))
		if err := exporter.Export(ctx, path, out.Leads); err != nil {
			return err
		}
		pterm.Success.Println("wrote", path)
	}

	return nil
}
