package model

import (
	"strings"
	"time"
)

// Display limits for the results table
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
	Ellipsis             = "..."
)

// Date layouts
const (
	TableDateLayout  = "2006-01-02"
	DetailDateLayout = "January 02, 2006 at 15:04"
)

// publishedAtLayouts are tried in order. RFC3339 accepts both a trailing Z
// and a numeric offset, with or without fractional seconds.
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	TableDateLayout,
}

// ParsePublishedAt parses an ISO-8601 timestamp as returned by the API.
func ParsePublishedAt(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TableDate returns the date-only form shown in the results table, or the
// raw value when it cannot be parsed.
func (v Video) TableDate() string {
	t, ok := ParsePublishedAt(v.PublishedAt)
	if !ok {
		return v.PublishedAt
	}
	return t.Format(TableDateLayout)
}

// DetailDate returns the long form shown in the details pane, or the raw
// value when it cannot be parsed.
func (v Video) DetailDate() string {
	t, ok := ParsePublishedAt(v.PublishedAt)
	if !ok {
		return v.PublishedAt
	}
	return t.Format(DetailDateLayout)
}

// DisplayTitle returns the title truncated for the results table.
func (v Video) DisplayTitle() string {
	return Truncate(v.Title, MaxTitleLength)
}

// DisplayDescription returns the description truncated for the results
// table and flattened to a single line.
func (v Video) DisplayDescription() string {
	d := Truncate(v.Description, MaxDescriptionLength)
	d = strings.ReplaceAll(d, "\n", " ")
	return strings.ReplaceAll(d, "\r", "")
}

// Truncate cuts s to at most limit characters and appends Ellipsis when
// anything was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}
