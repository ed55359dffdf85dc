package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/bidscan/internal/config"
	"github.com/nao1215/bidscan/internal/database"
	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/bidscan/internal/pipeline"
	"github.com/nao1215/bidscan/internal/report"
	"github.com/nao1215/bidscan/internal/score"
	"github.com/nao1215/bidscan/internal/source"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze announcements and score companies for suitability",
		Long: `Analyze reads the announcement listing and the scraped detail pages,
extracts eligibility, licenses, items, contract method and submission
channel, and scores every company of the roster.

Announcements are short-circuited before analysis when the notice is an
image (이미지 건), when too many proposals are mentioned (제안서 건) or when no
usable detail page text was scraped.

Examples:
  # Analyze with a roster file
  bidscan analyze -r results.txt -d scraped.txt -p company_info.json

  # Use the roster imported with "bidscan profiles import"
  bidscan analyze -r results.txt -d scraped.txt

  # Write a Markdown report
  bidscan analyze -r results.txt -d scraped.txt -m -o report/bids.md

Configuration file (.bidscan) example:
  scoring:
    licenseWeight: 1
    itemWeight: 2
  assembly:
    highCompetitionThreshold: 8
  profiles: company_info.json`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().StringP("results", "r", "",
		"Announcement listing file (lines of \"제안서 수: N | title | summary | url\")")
	cmd.Flags().StringP("dump", "d", "",
		"Scraped detail page dump (\"--- URL: ... ---\" blocks)")
	cmd.Flags().StringP("profiles", "p", "",
		"Company roster file (JSON or YAML); defaults to the profile database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the profile database")

	// Behavior flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of announcements analyzed concurrently")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .bidscan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("eligibility", false,
		"Include the eligibility section in the text report")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runAnalyze(ctx, cfg, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from defaults, the config file and the
// flags the user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently use defaults when no file exists.
	if found := config.FindConfigFile(configPath); found != "" {
		f, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		cfg.Apply(f)
		cfg.ConfigFilePath = found
	} else if configPath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	if cfg.ListingFile, err = flags.GetString("results"); err != nil {
		return nil, err
	}
	if cfg.DumpFile, err = flags.GetString("dump"); err != nil {
		return nil, err
	}
	if flags.Changed("profiles") {
		if cfg.ProfilesFile, err = flags.GetString("profiles"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ShowEligibility, err = flags.GetBool("eligibility"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runAnalyze loads the inputs, assembles one record per announcement and
// writes the report.
func runAnalyze(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	announcements, err := source.ReadListingFile(cfg.ListingFile)
	if err != nil {
		return err
	}

	var pages map[string]string
	if cfg.DumpFile != "" {
		if pages, err = source.ReadDumpFile(cfg.DumpFile); err != nil {
			return err
		}
	} else {
		logger.Warn("no dump file given; announcements without a short-circuit will have no content")
	}

	roster, err := loadRoster(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if len(roster) == 0 {
		logger.Warn("company roster is empty; no verdicts will be produced")
	}

	logger.Debug("loaded roster", "companies", roster.Names())
	logger.Info("starting analysis",
		"announcements", len(announcements),
		"pages", len(pages),
		"companies", len(roster),
		"batchSize", cfg.BatchSize,
	)

	jobs := make([]pipeline.Job, len(announcements))
	missing := 0
	for i, a := range announcements {
		jobs[i] = pipeline.Job{
			Announcement: a,
			Document:     model.NewDocument(pages[a.URL], a.URL),
		}
		if jobs[i].Document.Empty() {
			missing++
		}
	}
	if missing > 0 {
		logger.Warn("announcements without scraped text", "count", missing)
	}

	assembler := pipeline.NewAssembler(roster,
		append(assemblerOptions(cfg), pipeline.WithAssemblerLogger(logger))...)
	bp := pipeline.NewBatchProcessor(assembler,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	startTime := time.Now()
	records, err := bp.ProcessBatch(ctx, jobs)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	logger.Info("analysis completed", "elapsed", time.Since(startTime).Round(time.Millisecond))

	return outputReport(cfg, stdout, records)
}

// loadRoster reads the roster from the profiles file, or from the profile
// database when no file is configured.
func loadRoster(ctx context.Context, cfg *config.Config, logger *slog.Logger) (model.Roster, error) {
	if cfg.ProfilesFile != "" {
		return source.LoadRoster(cfg.ProfilesFile, source.WithRosterLogger(logger))
	}

	db, err := database.Open(cfg.DBDir, database.ReadOnlyOptions())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("no roster: pass --profiles or run \"bidscan profiles import\" first: %w", err)
		}
		return nil, err
	}
	defer db.Close()

	logger.Debug("loading roster from profile database", "path", db.Path())
	return db.LoadRoster(ctx)
}

// scorerOptions converts the scoring section of the config into scorer options.
func scorerOptions(cfg *config.Config) []score.Option {
	return []score.Option{
		score.WithWeights(score.Weights{
			License: cfg.Scoring.LicenseWeight,
			Item:    cfg.Scoring.ItemWeight,
		}),
		score.WithThresholds(score.Thresholds{
			Suitable: cfg.Scoring.SuitableMin,
			Review:   cfg.Scoring.ReviewMin,
		}),
	}
}

// assemblerOptions converts the config into assembler options.
func assemblerOptions(cfg *config.Config) []pipeline.AssemblerOption {
	return []pipeline.AssemblerOption{
		pipeline.WithScorer(score.New(scorerOptions(cfg)...)),
		pipeline.WithHighCompetitionThreshold(cfg.Assembly.HighCompetitionThreshold),
		pipeline.WithImageCaseMarker(cfg.Assembly.ImageCaseMarker),
	}
}

// outputReport writes the records in the requested format.
func outputReport(cfg *config.Config, stdout io.Writer, records []model.AnnouncementRecord) error {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports list company names and certificates, so only the owner may read them.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	_, err := newReportWriter(cfg, output).Write(records)
	return err
}

// newReportWriter returns the writer for the configured report format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithEligibility(cfg.ShowEligibility))
	}
}
