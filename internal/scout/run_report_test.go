package scout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/clock"
	"github.com/sitescout-io/sitescout/internal/report"
)

// TestRunProducesReport exercises the full run path below the CLI: the
// orchestrator feeds outcomes into a report, the report is written to disk,
// and the artifact has the expected categorized shape.
func TestRunProducesReport(t *testing.T) {
	t.Parallel()

	sites := []catalog.Site{
		{Name: "Alpha", URL: "https://alpha.example.com", Category: "First"},
		{Name: "Beta", URL: "https://beta.example.com", Category: "First"},
		{Name: "Gamma", URL: "https://gamma.example.com", Category: "Second"},
	}

	checker := &MockChecker{
		RunCheckFunc: func(_ context.Context, url, _ string) (string, error) {
			if url == "https://beta.example.com" {
				return `{"status":"DOWN","reason":"HTTP 503"}`, nil
			}
			return `{"status":"UP","reason":"page loaded"}`, nil
		},
	}

	orchestrator := New(checker, Config{
		BatchSize: 2,
		Clock:     &clock.Mock{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}, zerolog.Nop())

	run := report.New(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	err := orchestrator.Run(context.Background(), sites, func(o Outcome) {
		run.Add(o.Site, o.Status, o.Err)
	})
	require.NoError(t, err)
	require.Equal(t, 3, run.Len())

	path := filepath.Join(t.TempDir(), "website_status.json")
	require.NoError(t, run.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var artifact struct {
		Timestamp  string `json:"timestamp"`
		Categories map[string]map[string]struct {
			Status string  `json:"status"`
			URL    string  `json:"url"`
			Error  *string `json:"error"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(data, &artifact))

	assert.Equal(t, "2026-03-01 12:00:00", artifact.Timestamp)
	require.Len(t, artifact.Categories, 2)

	alpha := artifact.Categories["First"]["Alpha"]
	assert.Equal(t, "UP", alpha.Status)
	assert.Equal(t, "https://alpha.example.com", alpha.URL)
	assert.Nil(t, alpha.Error)

	beta := artifact.Categories["First"]["Beta"]
	assert.Equal(t, "DOWN", beta.Status)
	require.NotNil(t, beta.Error)
	assert.Equal(t, "HTTP 503", *beta.Error)

	gamma := artifact.Categories["Second"]["Gamma"]
	assert.Equal(t, "UP", gamma.Status)
	assert.Nil(t, gamma.Error)

	// The summary renders every category and flags the DOWN site.
	var summary bytes.Buffer
	require.NoError(t, run.Summary(&summary, sites))
	out := summary.String()
	assert.Contains(t, out, "=== Summary ===")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Contains(t, out, "Beta: DOWN")
	assert.Contains(t, out, "Error: HTTP 503")
}

// TestRunAbortedStillReportsPartialOutcomes cancels the run between batches
// and verifies the artifact still gets written with the outcomes recorded
// before the abort.
func TestRunAbortedStillReportsPartialOutcomes(t *testing.T) {
	t.Parallel()

	sites := []catalog.Site{
		{Name: "Alpha", URL: "https://alpha.example.com", Category: "First"},
		{Name: "Beta", URL: "https://beta.example.com", Category: "First"},
		{Name: "Gamma", URL: "https://gamma.example.com", Category: "Second"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mock := &clock.Mock{
		Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		// Cancel during the pause after batch 1, before batch 2 starts.
		OnSleep: func(time.Duration) { cancel() },
	}

	orchestrator := New(&MockChecker{}, Config{BatchSize: 2, Clock: mock}, zerolog.Nop())

	run := report.New(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	err := orchestrator.Run(ctx, sites, func(o Outcome) {
		run.Add(o.Site, o.Status, o.Err)
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, run.Len())

	path := filepath.Join(t.TempDir(), "website_status.json")
	require.NoError(t, run.Write(path))

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)

	var artifact struct {
		Categories map[string]map[string]struct {
			Status string `json:"status"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(data, &artifact))

	// Batch 1 made it into the artifact; the never-checked site did not.
	assert.Contains(t, artifact.Categories["First"], "Alpha")
	assert.Contains(t, artifact.Categories["First"], "Beta")
	assert.NotContains(t, artifact.Categories, "Second")

	var summary bytes.Buffer
	require.NoError(t, run.Summary(&summary, sites))
	assert.Contains(t, summary.String(), "Alpha: UP")
	assert.NotContains(t, summary.String(), "Gamma")
}
