package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitescout-io/sitescout/internal/catalog"
	"github.com/sitescout-io/sitescout/internal/constants"
)

func TestReport_Summary(t *testing.T) {
	t.Run("one line per site with glyph and status", func(t *testing.T) {
		r := New(time.Now())
		spotify := testSite("Spotify", "Entertainment & Media")
		vimeo := testSite("Vimeo", "Entertainment & Media")
		r.Add(spotify, constants.StatusUp, "")
		r.Add(vimeo, constants.StatusDown, "blank page")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, []catalog.Site{spotify, vimeo}))

		out := buf.String()
		assert.Contains(t, out, "=== Summary ===")
		assert.Contains(t, out, "Entertainment & Media:")
		assert.Contains(t, out, "✅ Spotify: UP")
		assert.Contains(t, out, "❌ Vimeo: DOWN")
		assert.Contains(t, out, "Error: blank page")
	})

	t.Run("up sites print no error line", func(t *testing.T) {
		r := New(time.Now())
		site := testSite("Spotify", "Media")
		r.Add(site, constants.StatusUp, "")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, []catalog.Site{site}))
		assert.NotContains(t, buf.String(), "Error:")
	})

	t.Run("categories follow the given order", func(t *testing.T) {
		r := New(time.Now())
		z := testSite("Z", "Zeta")
		a := testSite("A", "Alpha")
		r.Add(z, constants.StatusUp, "")
		r.Add(a, constants.StatusUp, "")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, []catalog.Site{z, a}))

		out := buf.String()
		assert.Less(t, strings.Index(out, "Zeta"), strings.Index(out, "Alpha"))
	})

	t.Run("sites follow the given order within a category", func(t *testing.T) {
		r := New(time.Now())
		// Deliberately not alphabetical: the listing order wins.
		vimeo := testSite("Vimeo", "Media")
		discord := testSite("Discord", "Media")
		spotify := testSite("Spotify", "Media")
		r.Add(spotify, constants.StatusUp, "")
		r.Add(vimeo, constants.StatusUp, "")
		r.Add(discord, constants.StatusUp, "")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, []catalog.Site{vimeo, discord, spotify}))

		out := buf.String()
		assert.Less(t, strings.Index(out, "Vimeo"), strings.Index(out, "Discord"))
		assert.Less(t, strings.Index(out, "Discord"), strings.Index(out, "Spotify"))
	})

	t.Run("categories missing from the order are still printed", func(t *testing.T) {
		r := New(time.Now())
		r.Add(testSite("X", "Unlisted"), constants.StatusDown, "oops")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, nil))
		assert.Contains(t, buf.String(), "Unlisted:")
		assert.Contains(t, buf.String(), "❌ X: DOWN")
	})

	t.Run("sites missing from the order are appended alphabetically", func(t *testing.T) {
		r := New(time.Now())
		listed := testSite("Listed", "Media")
		r.Add(listed, constants.StatusUp, "")
		r.Add(testSite("Stray B", "Media"), constants.StatusUp, "")
		r.Add(testSite("Stray A", "Media"), constants.StatusUp, "")

		var buf strings.Builder
		require.NoError(t, r.Summary(&buf, []catalog.Site{listed}))

		out := buf.String()
		assert.Less(t, strings.Index(out, "Listed"), strings.Index(out, "Stray A"))
		assert.Less(t, strings.Index(out, "Stray A"), strings.Index(out, "Stray B"))
	})

	t.Run("empty report prints only the header", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, New(time.Now()).Summary(&buf, nil))
		assert.Equal(t, "\n=== Summary ===\n", buf.String())
	})
}
