package model

import "strings"

// WatchURLPrefix is the public watch page every video URL is derived from.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// Video is a single liked video. Field names of the serialized form are
// part of the cache and export file format.
type Video struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Channel     string `json:"channel" yaml:"channel"`
	PublishedAt string `json:"published_at" yaml:"published_at"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
}

// WatchURL returns the watch page URL for a video ID.
func WatchURL(id string) string {
	return WatchURLPrefix + id
}

// NewVideo creates a video with its URL derived from id.
func NewVideo(id, title, channel, publishedAt, description string) Video {
	return Video{
		ID:          id,
		Title:       title,
		Channel:     channel,
		PublishedAt: publishedAt,
		Description: description,
		URL:         WatchURL(id),
	}
}

// Link returns the stored URL, falling back to the one derived from ID.
func (v Video) Link() string {
	if v.URL != "" {
		return v.URL
	}
	return WatchURL(v.ID)
}

// SearchText is the text a search query is matched against.
func (v Video) SearchText() string {
	return strings.ToLower(v.Title + " " + v.Channel + " " + v.Description)
}
