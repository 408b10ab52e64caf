package report

import "github.com/rs/zerolog"

// Step is one finalization action: write the artifact, print the summary,
// release browser resources.
type Step struct {
	// Name identifies the step in logs.
	Name string

	// Run performs the action.
	Run func() error
}

// Finalize executes every step in order, best-effort. A failing step is
// logged and never prevents the remaining steps from running: the run must
// always attempt to produce an artifact and a summary, even after a check
// failure or an interrupt. Returns the first error.
func Finalize(logger zerolog.Logger, steps ...Step) error {
	var firstErr error
	for _, step := range steps {
		if step.Run == nil {
			continue
		}
		if err := step.Run(); err != nil {
			logger.Error().Err(err).Str("step", step.Name).Msg("finalization step failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logger.Debug().Str("step", step.Name).Msg("finalization step completed")
	}
	return firstErr
}
