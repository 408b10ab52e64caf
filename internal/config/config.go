// Package config provides configuration management for sitescout with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (SITESCOUT_* prefix)
//  2. Global config (~/.sitescout/config.yaml)
//  3. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for sitescout.
type Config struct {
	// LLM contains settings for the Ollama model that judges page state.
	LLM LLMConfig `yaml:"llm" mapstructure:"llm"`

	// Browser contains settings for the Playwright browser engine.
	Browser BrowserConfig `yaml:"browser" mapstructure:"browser"`

	// Scout contains settings for batch orchestration.
	Scout ScoutConfig `yaml:"scout" mapstructure:"scout"`

	// Report contains settings for the output artifact.
	Report ReportConfig `yaml:"report" mapstructure:"report"`
}

// LLMConfig contains the recognized LLM options. They are passed opaquely
// to the agent client; nothing else reads them.
type LLMConfig struct {
	// Model is the Ollama model identifier.
	// Default: "qwen2.5:32b-instruct-q4_K_M"
	Model string `yaml:"model" mapstructure:"model"`

	// Host is the Ollama server base URL.
	// Default: "http://127.0.0.1:11434"
	Host string `yaml:"host" mapstructure:"host"`

	// NumCtx is the context window size requested from the model.
	// Default: 32000
	NumCtx int `yaml:"num_ctx" mapstructure:"num_ctx"`

	// Timeout bounds a single LLM round-trip. This is the only per-check
	// time bound in the system.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// BrowserConfig contains settings for the shared browser session.
type BrowserConfig struct {
	// Headless controls whether the browser runs without a window.
	// Default: true
	Headless bool `yaml:"headless" mapstructure:"headless"`

	// IgnoreHTTPSErrors disables TLS certificate validation so sites with
	// broken certificates are still judged on their content.
	// Default: true
	IgnoreHTTPSErrors bool `yaml:"ignore_https_errors" mapstructure:"ignore_https_errors"`
}

// ScoutConfig contains batch orchestration settings.
type ScoutConfig struct {
	// BatchSize is the number of sites checked concurrently per batch.
	// Default: 20
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`

	// BatchPause is the pause between batches.
	// Default: 1s
	BatchPause time.Duration `yaml:"batch_pause" mapstructure:"batch_pause"`
}

// ReportConfig contains output artifact settings.
type ReportConfig struct {
	// Path is where the JSON report is written, overwritten each run.
	// Default: "website_status.json" in the working directory.
	Path string `yaml:"path" mapstructure:"path"`
}
