// Package scout orchestrates agent-driven site checks in bounded batches.
//
// The orchestrator's two guarantees:
//   - every site submitted to a batch yields exactly one outcome, real or
//     synthesized, before the next batch starts;
//   - one site's failure (error or panic) never aborts its batch - failures
//     are captured as values and become DOWN outcomes.
package scout

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sitescout-io/sitescout/internal/agent"
	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/clock"
	"github.com/sitescout-io/sitescout/internal/constants"
	"github.com/sitescout-io/sitescout/internal/ctxutil"
	"github.com/sitescout-io/sitescout/internal/verdict"
)

// Outcome is the resolved verdict for one site in one run.
// Outcomes are matched back to their originating site by identity
// (category + name + url), never by completion order.
type Outcome struct {
	// Site is the catalog entry this outcome belongs to.
	Site catalog.Site

	// Status is UP or DOWN.
	Status constants.SiteStatus

	// Err explains a DOWN outcome. Empty for UP.
	Err string
}

// Config holds orchestrator settings.
type Config struct {
	// BatchSize is the number of sites checked concurrently per batch.
	// Zero or negative falls back to the default.
	BatchSize int

	// BatchPause is the pause between batches. Applied only when another
	// batch remains.
	BatchPause time.Duration

	// Clock supplies time for pacing. Nil falls back to the real clock.
	Clock clock.Clock
}

// Orchestrator fans site checks out to the agent client batch by batch.
type Orchestrator struct {
	checker agent.Checker
	cfg     Config
	logger  zerolog.Logger
}

// New creates an orchestrator for the given agent client.
func New(checker agent.Checker, cfg Config, logger zerolog.Logger) *Orchestrator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = constants.DefaultBatchSize
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	return &Orchestrator{
		checker: checker,
		cfg:     cfg,
		logger:  logger.With().Str("component", "scout").Logger(),
	}
}

// Run checks all sites and feeds every outcome to sink in batch order.
// Batch K+1 never starts before all of batch K's outcomes have resolved and
// been delivered. Returns the context error if the run is interrupted;
// outcomes delivered before the interrupt stay delivered.
func (o *Orchestrator) Run(ctx context.Context, sites []catalog.Site, sink func(Outcome)) error {
	batches := Batches(sites, o.cfg.BatchSize)
	o.logger.Info().
		Int("sites", len(sites)).
		Int("batches", len(batches)).
		Int("batch_size", o.cfg.BatchSize).
		Msg("starting site checks")

	for i, batch := range batches {
		if err := ctxutil.Canceled(ctx); err != nil {
			return err
		}

		o.logger.Debug().Int("batch", i+1).Int("size", len(batch)).Msg("running batch")
		for _, outcome := range o.runBatch(ctx, batch) {
			sink(outcome)
		}

		if i < len(batches)-1 {
			if err := o.cfg.Clock.Sleep(ctx, o.cfg.BatchPause); err != nil {
				return err
			}
		}
	}

	o.logger.Info().Int("sites", len(sites)).Msg("site checks completed")
	return nil
}

// runBatch checks every site in the batch concurrently and returns the
// outcome slice index-aligned with the input. Goroutines always return nil:
// failures live inside the outcome values, so one site can never cancel its
// siblings.
func (o *Orchestrator) runBatch(ctx context.Context, batch []catalog.Site) []Outcome {
	outcomes := make([]Outcome, len(batch))

	var g errgroup.Group
	for i, site := range batch {
		g.Go(func() error {
			outcomes[i] = o.checkSite(ctx, site)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// checkSite runs the full per-site path: agent check, then verdict parse.
// Every failure mode, including a panic anywhere in the path, resolves to a
// DOWN outcome for this site.
func (o *Orchestrator) checkSite(ctx context.Context, site catalog.Site) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().
				Str("site", site.Name).
				Interface("panic", r).
				Msg("check panicked")
			outcome = Outcome{
				Site:   site,
				Status: constants.StatusDown,
				Err:    fmt.Sprintf("check panicked: %v", r),
			}
		}
	}()

	o.logger.Info().Str("site", site.Name).Str("url", site.URL).Msg("checking website")

	raw, err := o.checker.RunCheck(ctx, site.URL, agent.CheckPrompt(site.URL))
	if err != nil {
		o.logger.Error().Err(err).Str("site", site.Name).Msg("check failed")
		return Outcome{Site: site, Status: constants.StatusDown, Err: err.Error()}
	}

	v := verdict.Parse(raw)
	o.logger.Info().
		Str("site", site.Name).
		Str("status", v.Status.String()).
		Msg("website status resolved")

	return Outcome{Site: site, Status: v.Status, Err: v.Reason}
}

// Batches partitions sites into fixed-size batches, preserving order.
// The final batch may be smaller. A non-positive size falls back to the
// default batch size.
func Batches(sites []catalog.Site, size int) [][]catalog.Site {
	if size <= 0 {
		size = constants.DefaultBatchSize
	}

	var batches [][]catalog.Site
	for start := 0; start < len(sites); start += size {
		end := min(start+size, len(sites))
		batches = append(batches, sites[start:end])
	}
	return batches
}
