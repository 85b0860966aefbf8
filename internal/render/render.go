// Package render turns task state into something a person can look at.
//
// The task store hands a Renderer the ordered view records first and the
// summary statistics second, every time its state changes.
package render

import (
	"html"
	"html/template"
	"time"
)

// Item is one rendered task.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`

	// HTML is Text with HTML metacharacters escaped, safe to embed in markup.
	HTML template.HTML `json:"-"`
}

// Stats is the summary shown next to the list.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// View is a full rendering: items in display order plus stats.
type View struct {
	Items []Item `json:"tasks"`
	Stats Stats  `json:"stats"`
}

// Renderer materializes the store's state.
type Renderer interface {
	// RenderItems replaces whatever was shown before with items, in order.
	RenderItems(items []Item) error

	// PublishStats updates the total/completed counters.
	PublishStats(stats Stats) error
}

// EscapeHTML escapes s for inclusion in HTML text content.
func EscapeHTML(s string) template.HTML {
	return template.HTML(html.EscapeString(s))
}

// Discard is a Renderer that shows nothing. Used in quiet mode.
var Discard Renderer = discard{}

type discard struct{}

func (discard) RenderItems([]Item) error { return nil }
func (discard) PublishStats(Stats) error { return nil }
