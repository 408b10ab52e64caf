// Package errors provides centralized error handling for sitescout.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrBrowserSetup indicates the browser engine could not be started or
	// a browser context could not be created. Setup failures abort the run.
	ErrBrowserSetup = errors.New("browser setup failed")

	// ErrLLMSetup indicates the LLM client could not be constructed, for
	// example because the configured host URL is invalid.
	ErrLLMSetup = errors.New("llm client setup failed")

	// ErrAgentInvocation indicates a single site's agent check failed:
	// navigation, page inspection, or the LLM round-trip returned an error.
	// Agent invocation failures never abort a batch; the orchestrator
	// converts them into DOWN outcomes.
	ErrAgentInvocation = errors.New("agent invocation failed")

	// ErrConfigInvalid indicates a configuration value is out of range or
	// otherwise unusable.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrConfigNil indicates a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrReportWrite indicates the report artifact could not be written.
	ErrReportWrite = errors.New("report write failed")

	// ErrRunInterrupted indicates the run was interrupted by the user.
	// Interrupted runs still finalize and exit without error status.
	ErrRunInterrupted = errors.New("run interrupted by user")
)
