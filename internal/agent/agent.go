// Package agent provides the browser-automation agent client.
//
// A Checker visits a URL and returns free-text (ideally JSON) describing the
// observed page state. Callers treat it as a black box: the raw output goes
// through the verdict parser, and any error from the check path is captured
// by the orchestrator, never propagated past a single site.
//
// IMPORTANT: This package may import internal/browser, internal/constants,
// and internal/errors. It MUST NOT import internal/scout, internal/report,
// or internal/cli.
package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sitescout-io/sitescout/internal/browser"
	"github.com/sitescout-io/sitescout/internal/ctxutil"
	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
)

// Checker is the agent client interface consumed by the orchestrator.
//
// RunCheck visits url, follows the natural-language instruction in prompt,
// and returns the agent's raw textual output. It returns an error on
// navigation or automation failure; the caller decides what that means.
type Checker interface {
	RunCheck(ctx context.Context, url, prompt string) (string, error)
}

// PageVisitor navigates to a URL and reports what it saw.
// *browser.Session is the production implementation.
type PageVisitor interface {
	Visit(ctx context.Context, url string) (*browser.PageState, error)
}

// LLM produces a text completion for a prompt.
// *llm.Client is the production implementation.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// BrowserChecker drives a browser to a site and asks an LLM to judge the
// observed page state.
type BrowserChecker struct {
	visitor PageVisitor
	llm     LLM
	logger  zerolog.Logger
}

// NewBrowserChecker creates a Checker backed by a shared browser session and
// a shared LLM client. Both collaborators are safe for concurrent checks:
// the visitor isolates every check in its own browser context, and the LLM
// client is stateless per call.
func NewBrowserChecker(visitor PageVisitor, llm LLM, logger zerolog.Logger) *BrowserChecker {
	return &BrowserChecker{
		visitor: visitor,
		llm:     llm,
		logger:  logger.With().Str("component", "agent").Logger(),
	}
}

// RunCheck navigates to url, captures the page state, and returns the LLM's
// textual judgment. Errors are wrapped with ErrAgentInvocation except pure
// context cancellation, which is surfaced as-is so the orchestrator can tell
// an interrupt from a check failure.
func (c *BrowserChecker) RunCheck(ctx context.Context, url, prompt string) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	state, err := c.visitor.Visit(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		c.logger.Debug().Err(err).Str("url", url).Msg("navigation failed")
		return "", scouterrors.Wrap(scouterrors.ErrAgentInvocation, err.Error())
	}

	raw, err := c.llm.Complete(ctx, observationPrompt(prompt, state))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		c.logger.Debug().Err(err).Str("url", url).Msg("llm judgment failed")
		return "", scouterrors.Wrap(scouterrors.ErrAgentInvocation, err.Error())
	}

	return raw, nil
}

// Compile-time check that BrowserChecker implements Checker.
var _ Checker = (*BrowserChecker)(nil)
