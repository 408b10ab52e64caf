package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitescout-io/sitescout/internal/errors"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitError)
}

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		expected bool
	}{
		{"text is valid", OutputText, true},
		{"json is valid", OutputJSON, true},
		{"empty is invalid", "", false},
		{"unknown is invalid", "yaml", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsValidOutputFormat(tc.format))
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"interrupted run", errors.ErrRunInterrupted, ExitSuccess},
		{"wrapped interrupted run", fmt.Errorf("check: %w", errors.ErrRunInterrupted), ExitSuccess},
		{"browser setup failure", errors.ErrBrowserSetup, ExitError},
		{"generic error", errors.ErrConfigInvalid, ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ExitCodeForError(tc.err))
		})
	}
}
