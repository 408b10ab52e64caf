// Package cli provides the command-line interface for sitescout.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sitescout-io/sitescout/internal/agent"
	"github.com/sitescout-io/sitescout/internal/browser"
	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/config"
	"github.com/sitescout-io/sitescout/internal/constants"
	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
	"github.com/sitescout-io/sitescout/internal/llm"
	"github.com/sitescout-io/sitescout/internal/report"
	"github.com/sitescout-io/sitescout/internal/scout"
	"github.com/sitescout-io/sitescout/internal/signal"
)

// AddCheckCommand adds the check command to the root command.
func AddCheckCommand(root *cobra.Command) {
	root.AddCommand(newCheckCmd())
}

// checkOptions contains the flag values for the check command. Only flags
// the user actually set override the loaded configuration.
type checkOptions struct {
	batchSize  int
	batchPause time.Duration
	model      string
	reportPath string
	headed     bool
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every cataloged website and write the status report",
		Long: `Check visits every website in the built-in catalog with a browser agent,
asks the configured Ollama model whether each page looks like a working
website, and records an UP or DOWN verdict per site.

Sites are checked in concurrent batches with a short pause between
batches. When all batches finish (or the run is interrupted), the JSON
report is written and a per-category summary is printed.

Examples:
  sitescout check
  sitescout check --batch-size 10 --batch-pause 2s
  sitescout check --model llama3.1:8b --report /tmp/status.json
  sitescout check --headed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.batchSize, "batch-size", constants.DefaultBatchSize,
		"Number of sites checked concurrently per batch")
	cmd.Flags().DurationVar(&opts.batchPause, "batch-pause", constants.DefaultBatchPause,
		"Pause between batches")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "",
		"Ollama model used to judge page state")
	cmd.Flags().StringVar(&opts.reportPath, "report", "",
		"Path of the JSON report artifact")
	cmd.Flags().BoolVar(&opts.headed, "headed", false,
		"Run the browser with a visible window")

	return cmd
}

// checkRunner bundles the setup constructors runCheck depends on, so tests
// can substitute failing implementations.
type checkRunner struct {
	startBrowser func(browser.Options) (*browser.Session, error)
	newLLM       func(llm.Config) (*llm.Client, error)
}

// defaultCheckRunner returns the production constructors.
func defaultCheckRunner() checkRunner {
	return checkRunner{
		startBrowser: browser.Start,
		newLLM:       llm.NewClient,
	}
}

// runCheck executes a full monitoring run: load config, start the browser
// and LLM client, fan checks out over the catalog, then finalize.
func runCheck(ctx context.Context, cmd *cobra.Command, out io.Writer, opts checkOptions) error {
	return runCheckWith(ctx, cmd, out, opts, defaultCheckRunner())
}

// runCheckWith is runCheck with injectable setup constructors.
//
// Finalization (write report, print summary, close browser if it started)
// runs no matter how the run ended: a setup failure or an interrupt still
// produces the artifact and the summary, with whatever outcomes were
// recorded by then.
func runCheckWith(ctx context.Context, cmd *cobra.Command, out io.Writer, opts checkOptions, runner checkRunner) error {
	logger := GetLogger().With().
		Str("run_id", uuid.New().String()).
		Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	applyCheckOverrides(cfg, cmd, opts)
	if err = config.Validate(cfg); err != nil {
		return err
	}

	handler := signal.NewHandler(ctx)
	defer handler.Stop()
	ctx = handler.Context()

	run := report.New(time.Now())
	sites := catalog.Sites()

	var session *browser.Session
	finalize := func() error {
		steps := []report.Step{
			{Name: "write report", Run: func() error {
				return run.Write(cfg.Report.Path)
			}},
			{Name: "print summary", Run: func() error {
				return run.Summary(out, sites)
			}},
		}
		if session != nil {
			steps = append(steps, report.Step{Name: "close browser", Run: session.Close})
		}
		return report.Finalize(logger, steps...)
	}

	session, err = runner.startBrowser(browser.Options{
		Headless:          cfg.Browser.Headless,
		IgnoreHTTPSErrors: cfg.Browser.IgnoreHTTPSErrors,
	})
	if err != nil {
		_ = finalize()
		return err
	}

	client, err := runner.newLLM(llm.Config{
		Model:   cfg.LLM.Model,
		Host:    cfg.LLM.Host,
		NumCtx:  cfg.LLM.NumCtx,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		_ = finalize()
		return err
	}

	checker := agent.NewBrowserChecker(session, client, logger)
	orchestrator := scout.New(checker, scout.Config{
		BatchSize:  cfg.Scout.BatchSize,
		BatchPause: cfg.Scout.BatchPause,
	}, logger)

	runErr := orchestrator.Run(ctx, sites, func(o scout.Outcome) {
		event := logger.Info().
			Str("category", o.Site.Category).
			Str("site", o.Site.Name).
			Str("status", o.Status.String())
		if o.Err != "" {
			event = event.Str("error", o.Err)
		}
		event.Msg("site checked")

		run.Add(o.Site, o.Status, o.Err)
	})

	finErr := finalize()

	if runErr != nil {
		if stderrors.Is(runErr, context.Canceled) {
			logger.Warn().
				Int("checked", run.Len()).
				Int("total", len(sites)).
				Msg("run interrupted; partial results recorded")
			return scouterrors.ErrRunInterrupted
		}
		return runErr
	}

	logger.Info().
		Int("checked", run.Len()).
		Str("report", cfg.Report.Path).
		Msg("run completed")
	return finErr
}

// applyCheckOverrides copies flag values the user explicitly set over the
// loaded configuration. Unset flags leave the config untouched.
func applyCheckOverrides(cfg *config.Config, cmd *cobra.Command, opts checkOptions) {
	flags := cmd.Flags()

	if flags.Changed("batch-size") {
		cfg.Scout.BatchSize = opts.batchSize
	}
	if flags.Changed("batch-pause") {
		cfg.Scout.BatchPause = opts.batchPause
	}
	if flags.Changed("model") {
		cfg.LLM.Model = opts.model
	}
	if flags.Changed("report") {
		cfg.Report.Path = opts.reportPath
	}
	if flags.Changed("headed") {
		cfg.Browser.Headless = !opts.headed
	}
}
