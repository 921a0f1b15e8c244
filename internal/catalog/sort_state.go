package catalog

import "github.com/ytget/yt-liked-searcher/internal/model"

// SortState tracks which column is the active sort and its direction.
// The zero value has every column unsorted.
type SortState struct {
	active    model.SortField
	direction model.SortIndicator
}

// Click activates field. Clicking the active column toggles its direction;
// clicking another column makes it the active one, ascending. It returns
// whether the new order is descending.
func (s *SortState) Click(field model.SortField) bool {
	if s.active == field && s.direction != model.Unsorted {
		if s.direction == model.Ascending {
			s.direction = model.Descending
		} else {
			s.direction = model.Ascending
		}
	} else {
		s.active = field
		s.direction = model.Ascending
	}
	return s.direction == model.Descending
}

// Indicator returns the header state of field
func (s *SortState) Indicator(field model.SortField) model.SortIndicator {
	if s.active != field {
		return model.Unsorted
	}
	return s.direction
}

// Reset returns every column to unsorted
func (s *SortState) Reset() {
	*s = SortState{}
}
