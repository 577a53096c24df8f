package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// UpdateLastUsed updates the LastUsedAt timestamp to the current time.
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	s.UpdateLastUsed()

	playwrightOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		playwrightOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	_, err := s.Page.Goto(url, playwrightOpts)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// WaitFor blocks until an element matching the selector reaches the
// requested state, or the wait budget runs out.
func (s *Session) WaitFor(opts WaitOptions) error {
	s.UpdateLastUsed()

	if opts.Selector == "" {
		return fmt.Errorf("selector is required for wait")
	}

	playwrightOpts := playwright.PageWaitForSelectorOptions{}

	if opts.State != "" {
		state := playwright.WaitForSelectorState(opts.State)
		playwrightOpts.State = &state
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	_, err := s.Page.WaitForSelector(opts.Selector, playwrightOpts)
	if err != nil {
		return fmt.Errorf("wait failed: %w", err)
	}

	return nil
}

// Screenshot renders the page to a PNG file at opts.Path, silently
// overwriting any existing file there.
func (s *Session) Screenshot(opts ScreenshotOptions) error {
	s.UpdateLastUsed()

	if opts.Path == "" {
		return fmt.Errorf("path is required for screenshot")
	}

	playwrightOpts := playwright.PageScreenshotOptions{
		Path:     playwright.String(opts.Path),
		FullPage: playwright.Bool(opts.FullPage),
	}

	if _, err := s.Page.Screenshot(playwrightOpts); err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}

	return nil
}

// QueryAll collects all elements matching the selector, in DOM order.
// The returned handles are invalid once the session is closed.
func (s *Session) QueryAll(selector string) ([]playwright.ElementHandle, error) {
	s.UpdateLastUsed()

	if selector == "" {
		return nil, fmt.Errorf("selector is required for query")
	}

	elements, err := s.Page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}

	return elements, nil
}

// Attribute reads an attribute from an element handle. The boolean
// reports whether the attribute is present at all, so callers can
// distinguish an absent attribute from an empty one.
func (s *Session) Attribute(handle playwright.ElementHandle, name string) (string, bool, error) {
	s.UpdateLastUsed()

	result, err := handle.Evaluate("(el, name) => el.getAttribute(name)", name)
	if err != nil {
		return "", false, fmt.Errorf("attribute read failed: %w", err)
	}
	if result == nil {
		return "", false, nil
	}

	value, ok := result.(string)
	if !ok {
		return "", false, fmt.Errorf("unexpected attribute value type %T", result)
	}
	return value, true, nil
}
