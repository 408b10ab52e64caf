// Package constants provides centralized constant values used throughout sitescout.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by sitescout.
const (
	// ReportFileName is the JSON artifact written at the end of every run.
	// It is overwritten each run; there is no history.
	ReportFileName = "website_status.json"

	// LogFileName is the rotating log file written alongside console output.
	LogFileName = "sitescout.log"
)

// Directory names used by sitescout for organizing data.
const (
	// ScoutHome is the hidden directory name where sitescout stores its data.
	// This directory is created in the user's home directory.
	ScoutHome = ".sitescout"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Defaults for LLM configuration.
const (
	// DefaultLLMModel is the default Ollama model used to judge page state.
	DefaultLLMModel = "qwen2.5:32b-instruct-q4_K_M"

	// DefaultLLMHost is the default Ollama server address.
	DefaultLLMHost = "http://127.0.0.1:11434"

	// DefaultLLMNumCtx is the default context window requested from the model.
	DefaultLLMNumCtx = 32000

	// DefaultLLMTimeout is the default maximum duration for a single LLM
	// round-trip. Per-site timeout behavior is delegated entirely to this
	// connection-level setting; the orchestrator enforces none of its own.
	DefaultLLMTimeout = 30 * time.Second
)

// Defaults for batch orchestration.
const (
	// DefaultBatchSize is the number of sites checked concurrently per batch.
	DefaultBatchSize = 20

	// DefaultBatchPause is the pause inserted between batches to pace load
	// on the browser engine and LLM server.
	DefaultBatchPause = 1 * time.Second
)

// Defaults for browser automation.
const (
	// DefaultNavigationTimeout is the maximum duration for a page navigation
	// before the browser gives up on the site.
	DefaultNavigationTimeout = 30 * time.Second

	// MaxPageTextBytes caps how much visible page text is forwarded to the
	// LLM. Keeps the prompt inside the configured context window.
	MaxPageTextBytes = 4096
)

// Log rotation settings.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated log files.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzipped.
	LogCompress = true
)

// ReportTimestampLayout is the layout of the report's timestamp field.
const ReportTimestampLayout = "2006-01-02 15:04:05"
