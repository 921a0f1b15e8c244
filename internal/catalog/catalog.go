package catalog

import (
	"slices"
	"strings"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// Catalog is the authoritative list of liked videos plus the view
// currently shown to the user.
type Catalog struct {
	videos []model.Video
	view   []model.Video
	query  string
	sort   SortState
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{}
}

// ReplaceAll overwrites the list with videos ordered newest first and
// resets the view to the full list. Duplicate IDs keep their first
// occurrence; the number dropped is returned.
func (c *Catalog) ReplaceAll(videos []model.Video) int {
	seen := make(map[string]struct{}, len(videos))
	list := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		seen[v.ID] = struct{}{}
		if v.URL == "" {
			v.URL = model.WatchURL(v.ID)
		}
		list = append(list, v)
	}
	slices.SortStableFunc(list, byPublishedDesc)

	c.videos = list
	c.view = list
	c.query = ""
	c.sort.Reset()
	return len(videos) - len(list)
}

// All returns the full list. Callers must not modify it.
func (c *Catalog) All() []model.Video {
	return c.videos
}

// View returns the current filtered and sorted view. Callers must not
// modify it.
func (c *Catalog) View() []model.Video {
	return c.view
}

// Query returns the trimmed query the view was last filtered with
func (c *Catalog) Query() string {
	return c.query
}

// Len returns the number of videos in the catalog
func (c *Catalog) Len() int {
	return len(c.videos)
}

// Search replaces the view with the videos matching query, in catalog
// order. Any column sort is dropped and every header returns to unsorted.
func (c *Catalog) Search(query string) []model.Video {
	c.query = strings.TrimSpace(query)
	c.view = Filter(c.videos, query)
	c.sort.Reset()
	return c.view
}

// SortBy handles a click on a column header and reorders the view.
func (c *Catalog) SortBy(field model.SortField) []model.Video {
	desc := c.sort.Click(field)
	c.view = Sort(c.view, field, desc)
	return c.view
}

// Indicator returns the header state of field
func (c *Catalog) Indicator(field model.SortField) model.SortIndicator {
	return c.sort.Indicator(field)
}

// Lookup finds a video in the current view by ID
func (c *Catalog) Lookup(id string) (model.Video, bool) {
	for _, v := range c.view {
		if v.ID == id {
			return v, true
		}
	}
	return model.Video{}, false
}
