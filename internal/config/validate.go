package config

import (
	"strings"

	"github.com/sitescout-io/sitescout/internal/errors"
)

// Validate checks the configuration for correctness. It returns an error
// describing the first invalid field found, or nil when the configuration
// is usable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateLLM(&cfg.LLM); err != nil {
		return err
	}
	if err := validateScout(&cfg.Scout); err != nil {
		return err
	}
	return validateReport(&cfg.Report)
}

func validateLLM(llm *LLMConfig) error {
	if strings.TrimSpace(llm.Model) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "llm.model must not be empty")
	}
	if strings.TrimSpace(llm.Host) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "llm.host must not be empty")
	}
	if llm.NumCtx <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "llm.num_ctx must be positive, got %d", llm.NumCtx)
	}
	if llm.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "llm.timeout must be positive, got %s", llm.Timeout)
	}
	return nil
}

func validateScout(scout *ScoutConfig) error {
	if scout.BatchSize <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "scout.batch_size must be positive, got %d", scout.BatchSize)
	}
	if scout.BatchPause < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid, "scout.batch_pause must not be negative, got %s", scout.BatchPause)
	}
	return nil
}

func validateReport(report *ReportConfig) error {
	if strings.TrimSpace(report.Path) == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "report.path must not be empty")
	}
	return nil
}
