// Package report accumulates per-site outcomes into the run report,
// persists the JSON artifact, and prints the console summary.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/constants"
	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
	"github.com/sitescout-io/sitescout/internal/verdict"
)

// Outcome is one site's entry in the report artifact.
// Field order matches the artifact shape: status, url, error.
type Outcome struct {
	// Status is "UP" or "DOWN".
	Status constants.SiteStatus `json:"status"`

	// URL is the site's address.
	URL string `json:"url"`

	// Error explains a DOWN outcome; null for UP.
	Error *string `json:"error"`
}

// Report is the full categorized collection of outcomes for one run.
// It is created empty at run start, populated batch by batch, and persisted
// exactly once at run end.
type Report struct {
	// Timestamp is the run start time in "YYYY-MM-DD HH:MM:SS" form.
	Timestamp string `json:"timestamp"`

	// Categories maps category name to site name to outcome.
	Categories map[string]map[string]Outcome `json:"categories"`
}

// New creates an empty report stamped with the run start time.
func New(start time.Time) *Report {
	return &Report{
		Timestamp:  start.Format(constants.ReportTimestampLayout),
		Categories: make(map[string]map[string]Outcome),
	}
}

// Add records the outcome for a site, creating its category on first use.
// An UP outcome always records a null error, whatever errText says.
func (r *Report) Add(site catalog.Site, status constants.SiteStatus, errText string) {
	if r.Categories[site.Category] == nil {
		r.Categories[site.Category] = make(map[string]Outcome)
	}

	outcome := Outcome{Status: status, URL: site.URL}
	if status != constants.StatusUp {
		if errText == "" {
			errText = verdict.NoReason
		}
		outcome.Error = &errText
	}
	r.Categories[site.Category][site.Name] = outcome
}

// Len returns the total number of recorded outcomes.
func (r *Report) Len() int {
	n := 0
	for _, sites := range r.Categories {
		n += len(sites)
	}
	return n
}

// Write serializes the report to path, overwriting any prior run's artifact.
// The artifact is written to a temp file in the same directory and renamed
// into place so a crash mid-write never leaves a truncated report behind.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return scouterrors.Wrap(scouterrors.ErrReportWrite, err.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return scouterrors.Wrap(scouterrors.ErrReportWrite, err.Error())
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return scouterrors.Wrap(scouterrors.ErrReportWrite, err.Error())
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return scouterrors.Wrap(scouterrors.ErrReportWrite, err.Error())
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return scouterrors.Wrap(scouterrors.ErrReportWrite, err.Error())
	}
	return nil
}
