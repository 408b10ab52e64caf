package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitescout-io/sitescout/internal/browser"
	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
)

// MockVisitor is a test implementation of PageVisitor.
type MockVisitor struct {
	VisitFunc func(ctx context.Context, url string) (*browser.PageState, error)
}

func (m *MockVisitor) Visit(ctx context.Context, url string) (*browser.PageState, error) {
	if m.VisitFunc != nil {
		return m.VisitFunc(ctx, url)
	}
	return &browser.PageState{URL: url, Status: 200, Title: "ok"}, nil
}

// MockLLM is a test implementation of LLM.
type MockLLM struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return `{"status":"UP","reason":"ok"}`, nil
}

func TestBrowserChecker_RunCheck(t *testing.T) {
	t.Run("returns raw llm output", func(t *testing.T) {
		checker := NewBrowserChecker(&MockVisitor{}, &MockLLM{}, zerolog.Nop())

		out, err := checker.RunCheck(context.Background(), "https://example.com", CheckPrompt("https://example.com"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"UP","reason":"ok"}`, out)
	})

	t.Run("llm sees the page observations", func(t *testing.T) {
		var seen string
		visitor := &MockVisitor{
			VisitFunc: func(_ context.Context, url string) (*browser.PageState, error) {
				return &browser.PageState{URL: url, Status: 503, Title: "Service Unavailable", Text: "try later"}, nil
			},
		}
		mockLLM := &MockLLM{
			CompleteFunc: func(_ context.Context, prompt string) (string, error) {
				seen = prompt
				return `{"status":"DOWN","reason":"503"}`, nil
			},
		}
		checker := NewBrowserChecker(visitor, mockLLM, zerolog.Nop())

		_, err := checker.RunCheck(context.Background(), "https://example.com", CheckPrompt("https://example.com"))
		require.NoError(t, err)
		assert.Contains(t, seen, "https://example.com")
		assert.Contains(t, seen, "HTTP status: 503")
		assert.Contains(t, seen, "Service Unavailable")
		assert.Contains(t, seen, "try later")
	})

	t.Run("navigation failure wraps ErrAgentInvocation", func(t *testing.T) {
		visitor := &MockVisitor{
			VisitFunc: func(context.Context, string) (*browser.PageState, error) {
				return nil, errors.New("net::ERR_NAME_NOT_RESOLVED")
			},
		}
		checker := NewBrowserChecker(visitor, &MockLLM{}, zerolog.Nop())

		_, err := checker.RunCheck(context.Background(), "https://nope.invalid", "prompt")
		require.Error(t, err)
		assert.ErrorIs(t, err, scouterrors.ErrAgentInvocation)
		assert.Contains(t, err.Error(), "ERR_NAME_NOT_RESOLVED")
	})

	t.Run("llm failure wraps ErrAgentInvocation", func(t *testing.T) {
		mockLLM := &MockLLM{
			CompleteFunc: func(context.Context, string) (string, error) {
				return "", errors.New("model not loaded")
			},
		}
		checker := NewBrowserChecker(&MockVisitor{}, mockLLM, zerolog.Nop())

		_, err := checker.RunCheck(context.Background(), "https://example.com", "prompt")
		assert.ErrorIs(t, err, scouterrors.ErrAgentInvocation)
	})

	t.Run("canceled context surfaces context error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		checker := NewBrowserChecker(&MockVisitor{}, &MockLLM{}, zerolog.Nop())
		_, err := checker.RunCheck(ctx, "https://example.com", "prompt")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckPrompt(t *testing.T) {
	t.Run("embeds the url and required fields", func(t *testing.T) {
		p := CheckPrompt("https://open.spotify.com")
		assert.Contains(t, p, "Visit https://open.spotify.com")
		assert.Contains(t, p, `"status"`)
		assert.Contains(t, p, `"reason"`)
	})
}
