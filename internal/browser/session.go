// Package browser manages the Playwright browser engine for site checks.
//
// One browser process is launched per run and shared by all checks; each
// check gets its own isolated BrowserContext so a crashed or misbehaving
// page can never corrupt another concurrently-running check.
package browser

import (
	"context"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/sitescout-io/sitescout/internal/constants"
	"github.com/sitescout-io/sitescout/internal/ctxutil"
	scouterrors "github.com/sitescout-io/sitescout/internal/errors"
)

// Options configures the shared browser session.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// IgnoreHTTPSErrors disables TLS certificate validation in page loads.
	IgnoreHTTPSErrors bool
}

// PageState is what the browser observed after navigating to a site.
// It is the raw material handed to the LLM for judgment.
type PageState struct {
	// URL is the final URL after redirects.
	URL string

	// Status is the HTTP status of the main document, or 0 when the
	// navigation produced no response (e.g. about:blank redirect chains).
	Status int

	// Title is the document title.
	Title string

	// Text is the visible body text, truncated to MaxPageTextBytes.
	Text string
}

// Session is a long-lived browser shared across all checks in a run.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

// Start launches the Playwright driver and a Chromium browser.
// Failures here are setup failures: they abort the whole run.
func Start(opts Options) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, scouterrors.Wrap(scouterrors.ErrBrowserSetup, err.Error())
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, scouterrors.Wrap(scouterrors.ErrBrowserSetup, err.Error())
	}

	return &Session{pw: pw, browser: b, opts: opts}, nil
}

// Visit navigates to url in a fresh isolated context and captures the
// observable page state. The context is always closed before returning so
// tabs never accumulate across a run.
func (s *Session) Visit(ctx context.Context, url string) (*PageState, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	bctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		IgnoreHttpsErrors: playwright.Bool(s.opts.IgnoreHTTPSErrors),
	})
	if err != nil {
		return nil, scouterrors.Wrap(err, "creating browser context")
	}
	defer func() { _ = bctx.Close() }()

	page, err := bctx.NewPage()
	if err != nil {
		return nil, scouterrors.Wrap(err, "opening page")
	}

	resp, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(constants.DefaultNavigationTimeout.Milliseconds())),
	})
	if err != nil {
		return nil, scouterrors.Wrapf(err, "navigating to %s", url)
	}

	state := &PageState{URL: page.URL()}
	if resp != nil {
		state.Status = resp.Status()
	}

	// Title and body text are best-effort: a page without them is still
	// observable state for the LLM to judge.
	if title, terr := page.Title(); terr == nil {
		state.Title = title
	}
	if text, terr := page.Locator("body").InnerText(); terr == nil {
		state.Text = truncate(strings.TrimSpace(text), constants.MaxPageTextBytes)
	}

	return state, nil
}

// Close shuts down the browser and the Playwright driver.
func (s *Session) Close() error {
	var firstErr error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			firstErr = err
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return scouterrors.Wrap(firstErr, "closing browser session")
}

// truncate clips s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
