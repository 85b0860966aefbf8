package render

import (
	"fmt"
	"io"
	"strings"
)

// Text renders tasks as numbered terminal lines.
type Text struct {
	w io.Writer
}

// NewText creates a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// RenderItems implements Renderer.
func (t *Text) RenderItems(items []Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(t.w, "no tasks found")
		return err
	}
	for i, item := range items {
		if err := FormatItem(t.w, i+1, item); err != nil {
			return err
		}
	}
	return nil
}

// PublishStats implements Renderer.
func (t *Text) PublishStats(stats Stats) error {
	_, err := fmt.Fprintf(t.w, "%d total, %d completed\n", stats.Total, stats.Completed)
	return err
}

// FormatItem formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, check box, text)
func FormatItem(w io.Writer, num int, item Item) error {
	mark := " "
	if item.Completed {
		mark = "x"
	}
	_, err := fmt.Fprintf(w, "%4d  [%s] %s\n", num, mark, normalizeText(item.Text))
	return err
}

// normalizeText normalizes task text for single-line display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
