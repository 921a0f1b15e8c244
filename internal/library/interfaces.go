package library

import (
	"context"

	"github.com/ytget/yt-liked-searcher/internal/model"
	"github.com/ytget/yt-liked-searcher/internal/youtube"
)

// CacheStore persists the full video list
type CacheStore interface {
	Save(videos []model.Video) error
	Load() ([]model.Video, bool, error)
	Clear() error
	Exists() bool
	Path() string
}

// RemoteSource lists every liked video of the signed-in user
type RemoteSource interface {
	FetchAllLiked(ctx context.Context, progress youtube.ProgressFunc) ([]model.Video, error)
}

// Exporter writes video lists to export files and returns the written path
type Exporter interface {
	ExportResults(videos []model.Video) (string, error)
	ExportAll(videos []model.Video) (string, error)
}
