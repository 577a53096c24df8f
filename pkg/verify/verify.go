// Package verify drives a one-shot visual and textual check of the
// litebrite-webgpu app: it navigates a headless Chromium to the locally
// running app, waits for the color palette to render, captures a full-page
// screenshot, and reports the title and inline style of every color peg.
package verify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ford442/litebrite-webgpu/pkg/browser"
	"github.com/ford442/litebrite-webgpu/pkg/logging"
)

// Fixed values of the verification run. There is deliberately no flag or
// environment surface feeding these; the struct form exists so the defaults
// live in one place and tests can redirect output.
const (
	DefaultURL            = "http://localhost:5173"
	DefaultReadySelector  = ".color-palette"
	DefaultPegSelector    = ".color-peg"
	DefaultScreenshotPath = "verification/verification.png"

	sessionName = "verify-colors"
)

// Options configures a verification run. The zero value runs the standard
// check against the local dev server.
type Options struct {
	// URL is the address of the running app
	URL string

	// ReadySelector is the element whose appearance marks the page ready
	ReadySelector string

	// PegSelector matches the color peg buttons to report on
	PegSelector string

	// ScreenshotPath is where the full-page PNG is written
	ScreenshotPath string

	// Timeout is the per-operation wait budget in milliseconds
	// (0 means the browser package default)
	Timeout float64

	// Out receives the report; defaults to stdout
	Out io.Writer
}

func (o *Options) applyDefaults() {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.ReadySelector == "" {
		o.ReadySelector = DefaultReadySelector
	}
	if o.PegSelector == "" {
		o.PegSelector = DefaultPegSelector
	}
	if o.ScreenshotPath == "" {
		o.ScreenshotPath = DefaultScreenshotPath
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// Verifier runs the end-to-end check. One Verifier performs one run;
// the browser session it acquires is released on every exit path.
type Verifier struct {
	manager *browser.SessionManager
	log     *logging.Logger
	opts    Options
}

// New creates a verifier for the given options. Zero-value fields fall
// back to the standard litebrite check.
func New(opts Options) *Verifier {
	opts.applyDefaults()
	return &Verifier{
		manager: browser.NewSessionManager(),
		log:     logging.NewLogger("verify"),
		opts:    opts,
	}
}

// Run performs the verification: acquire a headless browser session,
// navigate, wait for readiness, capture the screenshot, query the pegs,
// and write the report. Any failure aborts the remaining steps; there are
// no retries and no partial recovery.
func (v *Verifier) Run(ctx context.Context) error {
	if err := v.manager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize browser driver: %w", err)
	}
	defer func() {
		if err := v.manager.Shutdown(); err != nil {
			v.log.Warnf("Browser shutdown reported an error: %v", err)
		}
	}()

	v.log.Infof("Starting verification run %s against %s", v.log.SessionID(), v.opts.URL)

	session, err := v.manager.StartSession(sessionName, browser.SessionOptions{
		Headless: true,
		Timeout:  v.opts.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := session.Navigate(v.opts.URL, browser.NavigateOptions{}); err != nil {
		return fmt.Errorf("failed to open %s: %w", v.opts.URL, err)
	}
	v.log.Debugf("Navigation complete, current URL %s", session.CurrentURL)

	if err := session.WaitFor(browser.WaitOptions{Selector: v.opts.ReadySelector}); err != nil {
		return fmt.Errorf("page never became ready (%s): %w", v.opts.ReadySelector, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := session.Screenshot(browser.ScreenshotOptions{
		Path:     v.opts.ScreenshotPath,
		FullPage: true,
	}); err != nil {
		return fmt.Errorf("failed to capture %s: %w", v.opts.ScreenshotPath, err)
	}
	v.log.Infof("Captured full-page screenshot at %s", v.opts.ScreenshotPath)

	report, err := v.collect(session)
	if err != nil {
		return err
	}
	v.log.Infof("Found %d elements matching %s", report.Count(), v.opts.PegSelector)

	if err := report.Write(v.opts.Out); err != nil {
		return err
	}

	return nil
}

// collect queries the peg elements and reads the attributes the report
// needs, in DOM order.
func (v *Verifier) collect(session *browser.Session) (*Report, error) {
	handles, err := session.QueryAll(v.opts.PegSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", v.opts.PegSelector, err)
	}

	report := &Report{Buttons: make([]Button, 0, len(handles))}
	for i, handle := range handles {
		button := Button{Index: i}

		title, present, err := session.Attribute(handle, "title")
		if err != nil {
			return nil, fmt.Errorf("failed to read title of element %d: %w", i, err)
		}
		if present {
			button.Title = &title
		}

		style, _, err := session.Attribute(handle, "style")
		if err != nil {
			return nil, fmt.Errorf("failed to read style of element %d: %w", i, err)
		}
		button.Style = style

		report.Buttons = append(report.Buttons, button)
	}

	return report, nil
}
