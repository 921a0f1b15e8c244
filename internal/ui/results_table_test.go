package ui

import (
	"strings"
	"testing"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

func TestHeaderText(t *testing.T) {
	loc := NewLocalization()

	tests := []struct {
		field     model.SortField
		indicator model.SortIndicator
		want      string
	}{
		{model.SortByTitle, model.Unsorted, "Title"},
		{model.SortByChannel, model.Ascending, "Channel ↑"},
		{model.SortByDate, model.Descending, "Date Liked ↓"},
		{model.SortByDescription, model.Unsorted, "Description"},
	}
	for _, tt := range tests {
		if got := headerText(loc, tt.field, tt.indicator); got != tt.want {
			t.Errorf("headerText(%s, %s) = %q, want %q", tt.field, tt.indicator, got, tt.want)
		}
	}
}

func TestCellText(t *testing.T) {
	long := strings.Repeat("x", 150)
	v := model.NewVideo("id1", long, "Channel", "2024-05-06T07:08:09Z", "line one\r\nline two")

	if got := cellText(v, 0); got != strings.Repeat("x", 100)+"..." {
		t.Errorf("Title cell should be truncated, got %q", got)
	}
	if got := cellText(v, 1); got != "Channel" {
		t.Errorf("Expected channel cell, got %q", got)
	}
	if got := cellText(v, 2); got != "2024-05-06" {
		t.Errorf("Expected table date, got %q", got)
	}
	if got := cellText(v, 3); got != "line one line two" {
		t.Errorf("Description cell should be a single line, got %q", got)
	}
	if got := cellText(v, 4); got != "" {
		t.Errorf("Out of range column should be empty, got %q", got)
	}
}

func TestCellText_RawDate(t *testing.T) {
	v := model.NewVideo("id1", "Title", "Channel", "yesterday", "")
	if got := cellText(v, 2); got != "yesterday" {
		t.Errorf("Unparseable date should be shown raw, got %q", got)
	}
}
