package verify

import (
	"fmt"
	"io"
)

// Button holds the attributes read from one color peg element. Title is a
// pointer so an absent title attribute stays distinguishable from an empty
// one; both print as the empty string.
type Button struct {
	Index int
	Title *string
	Style string
}

// Report is the transient result of one verification run. It only lives
// long enough to be written out; the element handles it was built from are
// invalid once the browser session closes.
type Report struct {
	Buttons []Button
}

// Count returns the number of color buttons found.
func (r *Report) Count() int {
	return len(r.Buttons)
}

// Write emits the report in its fixed line format:
//
//	Found {count} color buttons
//	Button {index}: {title} - {style}
//
// with one Button line per element, in DOM order starting at index 0.
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Found %d color buttons\n", len(r.Buttons)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, button := range r.Buttons {
		title := ""
		if button.Title != nil {
			title = *button.Title
		}
		if _, err := fmt.Fprintf(w, "Button %d: %s - %s\n", button.Index, title, button.Style); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}
