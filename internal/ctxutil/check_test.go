package ctxutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanceled(t *testing.T) {
	t.Run("returns nil for live context", func(t *testing.T) {
		assert.NoError(t, Canceled(context.Background()))
	})

	t.Run("returns Canceled after cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Canceled(ctx), context.Canceled)
	})

	t.Run("returns DeadlineExceeded after timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)
		assert.ErrorIs(t, Canceled(ctx), context.DeadlineExceeded)
	})
}
