package config

import (
	"github.com/spf13/viper"

	"github.com/sitescout-io/sitescout/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by the
// config file and environment variables.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:   constants.DefaultLLMModel,
			Host:    constants.DefaultLLMHost,
			NumCtx:  constants.DefaultLLMNumCtx,
			Timeout: constants.DefaultLLMTimeout,
		},
		Browser: BrowserConfig{
			Headless: true,

			// Sites with broken certificates are still judged on content.
			IgnoreHTTPSErrors: true,
		},
		Scout: ScoutConfig{
			BatchSize:  constants.DefaultBatchSize,
			BatchPause: constants.DefaultBatchPause,
		},
		Report: ReportConfig{
			Path: constants.ReportFileName,
		},
	}
}

// setDefaults registers the default values on a viper instance so lower
// layers fall through to them.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("llm.model", defaults.LLM.Model)
	v.SetDefault("llm.host", defaults.LLM.Host)
	v.SetDefault("llm.num_ctx", defaults.LLM.NumCtx)
	v.SetDefault("llm.timeout", defaults.LLM.Timeout)

	v.SetDefault("browser.headless", defaults.Browser.Headless)
	v.SetDefault("browser.ignore_https_errors", defaults.Browser.IgnoreHTTPSErrors)

	v.SetDefault("scout.batch_size", defaults.Scout.BatchSize)
	v.SetDefault("scout.batch_pause", defaults.Scout.BatchPause)

	v.SetDefault("report.path", defaults.Report.Path)
}
