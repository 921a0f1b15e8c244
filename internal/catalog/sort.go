package catalog

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/cases"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// Sort returns a stably sorted copy of videos ordered by field. Text
// columns compare case-folded values; the date column compares the
// date-only table value, with unparseable dates ordered as the earliest.
func Sort(videos []model.Video, field model.SortField, descending bool) []model.Video {
	sorted := slices.Clone(videos)
	key := sortKey(field, cases.Fold())

	slices.SortStableFunc(sorted, func(a, b model.Video) int {
		if descending {
			return key(b, a)
		}
		return key(a, b)
	})
	return sorted
}

// sortKey returns the ascending comparison for field. A Caser is stateful,
// so each Sort call gets its own.
func sortKey(field model.SortField, folder cases.Caser) func(a, b model.Video) int {
	fold := folder.String
	switch field {
	case model.SortByChannel:
		return func(a, b model.Video) int { return cmp.Compare(fold(a.Channel), fold(b.Channel)) }
	case model.SortByDescription:
		return func(a, b model.Video) int { return cmp.Compare(fold(a.Description), fold(b.Description)) }
	case model.SortByDate:
		return func(a, b model.Video) int { return displayDate(a).Compare(displayDate(b)) }
	default:
		return func(a, b model.Video) int { return cmp.Compare(fold(a.Title), fold(b.Title)) }
	}
}

// displayDate parses the table date. Zero time sorts before any real date.
func displayDate(v model.Video) time.Time {
	t, err := time.Parse(model.TableDateLayout, v.TableDate())
	if err != nil {
		return time.Time{}
	}
	return t
}

// byPublishedDesc orders newest first; unparseable timestamps go last.
func byPublishedDesc(a, b model.Video) int {
	ta, okA := model.ParsePublishedAt(a.PublishedAt)
	tb, okB := model.ParsePublishedAt(b.PublishedAt)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}
