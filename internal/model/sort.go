package model

import "fmt"

// SortField identifies a sortable results column
type SortField string

const (
	SortByTitle       SortField = "title"
	SortByChannel     SortField = "channel"
	SortByDate        SortField = "date"
	SortByDescription SortField = "description"
)

// SortFields lists the columns in display order
var SortFields = []SortField{SortByTitle, SortByChannel, SortByDate, SortByDescription}

// String returns the string representation of SortField
func (f SortField) String() string {
	return string(f)
}

// IsValid reports whether f names a known column
func (f SortField) IsValid() bool {
	switch f {
	case SortByTitle, SortByChannel, SortByDate, SortByDescription:
		return true
	}
	return false
}

// ParseSortField converts a column name to a SortField
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown sort field: %q", s)
	}
	return f, nil
}

// SortIndicator is the per-column sort state shown in the table header
type SortIndicator int

const (
	// Unsorted means the column has not been activated since the last reset
	Unsorted SortIndicator = iota

	// Ascending means the column is the active sort, A to Z / oldest first
	Ascending

	// Descending means the column is the active sort, Z to A / newest first
	Descending
)

// String returns the string representation of SortIndicator
func (s SortIndicator) String() string {
	switch s {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unsorted"
	}
}

// Arrow returns the suffix appended to a column header
func (s SortIndicator) Arrow() string {
	switch s {
	case Ascending:
		return " ↑"
	case Descending:
		return " ↓"
	default:
		return ""
	}
}
