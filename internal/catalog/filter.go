package catalog

import (
	"strings"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// Filter returns the videos whose title, channel or description contain
// query, case-insensitively, in input order. A blank query returns videos
// unchanged.
func Filter(videos []model.Video, query string) []model.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return videos
	}

	matched := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(v.SearchText(), q) {
			matched = append(matched, v)
		}
	}
	return matched
}
