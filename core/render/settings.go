// ABOUTME: Render settings threaded through feed, article and header rendering
// ABOUTME: Replaces process-wide format knobs with an explicit per-document value

package render

import (
	"time"

	"fbiarss/pkg/utils/dates"
)

// Settings carries the formatting knobs that apply to one document render.
// Callers needing per-document formats supply their own value instead of
// mutating shared state.
type Settings struct {
	// RSSDateLayout formats machine-readable dates (pubDate, lastBuildDate,
	// <time dateTime> attributes).
	RSSDateLayout string

	// DisplayDateLayout formats the human-readable text of <time> elements.
	DisplayDateLayout string

	// ListSeparator splits separator-delimited list input such as tags.
	ListSeparator string
}

// Default returns the canonical settings: ISO-8601 UTC feed dates, RFC1123Z
// display dates, comma-separated lists.
func Default() *Settings {
	return &Settings{
		RSSDateLayout:     dates.RSSLayout,
		DisplayDateLayout: dates.DisplayLayout,
		ListSeparator:     ",",
	}
}

// FormatRSSTime renders t in the machine-readable feed format, normalized
// to UTC.
func (s *Settings) FormatRSSTime(t time.Time) string {
	return t.UTC().Format(s.RSSDateLayout)
}

// FormatRSSDate parses value (epoch seconds, date string, or empty for now)
// and renders it in the machine-readable feed format.
func (s *Settings) FormatRSSDate(value string) string {
	return s.FormatRSSTime(dates.ParseOrNow(value))
}

// FormatDisplayTime renders t in the human-readable display format.
func (s *Settings) FormatDisplayTime(t time.Time) string {
	return t.Format(s.DisplayDateLayout)
}

// FormatDisplayDate parses value and renders it in the display format.
func (s *Settings) FormatDisplayDate(value string) string {
	return s.FormatDisplayTime(dates.ParseOrNow(value))
}
