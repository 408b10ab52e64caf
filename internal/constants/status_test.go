package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteStatus_String(t *testing.T) {
	t.Run("up renders uppercase UP", func(t *testing.T) {
		assert.Equal(t, "UP", StatusUp.String())
	})

	t.Run("down renders uppercase DOWN", func(t *testing.T) {
		assert.Equal(t, "DOWN", StatusDown.String())
	})
}

func TestSiteStatus_Glyph(t *testing.T) {
	t.Run("up uses check mark", func(t *testing.T) {
		assert.Equal(t, "✅", StatusUp.Glyph())
	})

	t.Run("down uses cross mark", func(t *testing.T) {
		assert.Equal(t, "❌", StatusDown.Glyph())
	})

	t.Run("unknown status falls back to cross mark", func(t *testing.T) {
		assert.Equal(t, "❌", SiteStatus("weird").Glyph())
	})
}
