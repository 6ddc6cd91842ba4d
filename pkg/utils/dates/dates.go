// ABOUTME: Date parsing and formatting utilities for feed and article timestamps
// ABOUTME: Accepts epoch seconds, ISO-ish strings or nothing (defaults to now)

package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// RSSLayout is the canonical machine-readable date format: ISO-8601 in
	// UTC with a literal Z designator. It is applied everywhere a feed date
	// is emitted (pubDate, lastBuildDate, <time dateTime> attributes).
	RSSLayout = "2006-01-02T15:04:05Z"

	// DisplayLayout is the human-readable format used for display-only
	// contexts such as article byline times.
	DisplayLayout = "Mon, 02 Jan 2006 15:04:05 -0700"
)

// IsTimestamp reports whether value is a plain integer epoch timestamp
// within the platform's integer range.
func IsTimestamp(value string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return err == nil
}

// Parse interprets value either as epoch seconds or as a date string.
// String parsing is flexible about the formats commonly found in feeds
// (RFC3339, RFC1123, bare dates and so on).
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if sec, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return dateparse.ParseAny(value)
}

// ParseOrNow parses value, falling back to the current time when value is
// empty or unparseable.
func ParseOrNow(value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Now()
	}
	t, err := Parse(value)
	if err != nil {
		return time.Now()
	}
	return t
}
