package library

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/catalog"
	"github.com/ytget/yt-liked-searcher/internal/model"
	"github.com/ytget/yt-liked-searcher/internal/youtube"
)

// ApplyResult describes a catalog replacement
type ApplyResult struct {
	Loaded     int
	Duplicates int
	// CacheErr is set when the new list could not be written to the cache.
	// The catalog keeps the new list regardless.
	CacheErr error
}

// Service owns the catalog and its collaborators
type Service struct {
	catalog  *catalog.Catalog
	store    CacheStore
	remote   RemoteSource
	exporter Exporter
	logger   *zap.Logger
}

// NewService creates a service with an empty catalog
func NewService(store CacheStore, remote RemoteSource, exporter Exporter, logger *zap.Logger) *Service {
	return &Service{
		catalog:  catalog.New(),
		store:    store,
		remote:   remote,
		exporter: exporter,
		logger:   logger,
	}
}

// SetCacheStore switches to another cache file; the catalog is kept
func (s *Service) SetCacheStore(store CacheStore) {
	s.store = store
}

// SetExporter replaces the exporter, e.g. after the export settings changed
func (s *Service) SetExporter(exporter Exporter) {
	s.exporter = exporter
}

// CacheExists reports whether a cache file is present
func (s *Service) CacheExists() bool {
	return s.store.Exists()
}

// LoadFromCache replaces the catalog with the cached list. found is false
// when there is no usable cache; an unreadable cache is logged, returned as
// a CacheCorrupt error and otherwise treated as absent.
func (s *Service) LoadFromCache() (loaded int, found bool, err error) {
	videos, found, err := s.store.Load()
	if err != nil {
		s.logger.Warn("ignoring unreadable cache", zap.String("path", s.store.Path()), zap.Error(err))
		return 0, false, err
	}
	if !found {
		s.logger.Info("no cache file", zap.String("path", s.store.Path()))
		return 0, false, nil
	}

	dropped := s.catalog.ReplaceAll(videos)
	if dropped > 0 {
		s.logger.Warn("cache contained duplicate videos", zap.Int("dropped", dropped))
	}
	s.logger.Info("catalog loaded from cache", zap.Int("count", s.catalog.Len()))
	return s.catalog.Len(), true, nil
}

// Fetch downloads the liked list without touching the catalog. It is safe
// to call from a background goroutine.
func (s *Service) Fetch(ctx context.Context, progress youtube.ProgressFunc) ([]model.Video, error) {
	videos, err := s.remote.FetchAllLiked(ctx, progress)
	if err != nil {
		s.logger.Error("fetching liked videos failed", zap.String("type", string(apperrors.TypeOf(err))), zap.Error(err))
		return nil, err
	}
	return videos, nil
}

// Apply replaces the catalog with a fetched list and writes it to the cache
func (s *Service) Apply(videos []model.Video) ApplyResult {
	res := ApplyResult{Duplicates: s.catalog.ReplaceAll(videos)}
	res.Loaded = s.catalog.Len()
	if res.Duplicates > 0 {
		s.logger.Warn("remote list contained duplicate videos", zap.Int("dropped", res.Duplicates))
	}

	if err := s.store.Save(s.catalog.All()); err != nil {
		s.logger.Error("failed to write cache", zap.String("path", s.store.Path()), zap.Error(err))
		res.CacheErr = err
	}
	s.logger.Info("catalog replaced from YouTube", zap.Int("count", res.Loaded))
	return res
}

// Refresh fetches and applies in one step. On a fetch error the catalog is
// left as it was.
func (s *Service) Refresh(ctx context.Context, progress youtube.ProgressFunc) (ApplyResult, error) {
	videos, err := s.Fetch(ctx, progress)
	if err != nil {
		return ApplyResult{}, err
	}
	return s.Apply(videos), nil
}

// Search filters the catalog and returns the new view
func (s *Service) Search(query string) []model.Video {
	view := s.catalog.Search(query)
	s.logger.Debug("search", zap.String("query", query), zap.Int("matches", len(view)))
	return view
}

// SortBy handles a column header click and returns the reordered view
func (s *Service) SortBy(field model.SortField) []model.Video {
	return s.catalog.SortBy(field)
}

// Indicator returns the sort state of a column
func (s *Service) Indicator(field model.SortField) model.SortIndicator {
	return s.catalog.Indicator(field)
}

// View returns the current view
func (s *Service) View() []model.Video {
	return s.catalog.View()
}

// All returns the full catalog
func (s *Service) All() []model.Video {
	return s.catalog.All()
}

// Query returns the active search query
func (s *Service) Query() string {
	return s.catalog.Query()
}

// Lookup finds a video of the current view by ID
func (s *Service) Lookup(id string) (model.Video, bool) {
	return s.catalog.Lookup(id)
}

// Counts returns the number of videos shown and in the catalog
func (s *Service) Counts() (shown, total int) {
	return len(s.catalog.View()), s.catalog.Len()
}

// Summary describes the view for the status line
func (s *Service) Summary() string {
	shown, total := s.Counts()
	switch {
	case total == 0:
		return "No videos loaded"
	case shown == total && s.catalog.Query() == "":
		return fmt.Sprintf("Showing all %d videos", total)
	default:
		return fmt.Sprintf("Showing %d of %d videos", shown, total)
	}
}

// ExportResults writes the current view
func (s *Service) ExportResults() (string, error) {
	return s.export("results", s.exporter.ExportResults, s.catalog.View())
}

// ExportAll writes the full catalog
func (s *Service) ExportAll() (string, error) {
	return s.export("all", s.exporter.ExportAll, s.catalog.All())
}

func (s *Service) export(kind string, write func([]model.Video) (string, error), videos []model.Video) (string, error) {
	path, err := write(videos)
	if err != nil {
		s.logger.Warn("export failed", zap.String("kind", kind), zap.Error(err))
		return "", err
	}
	return path, nil
}

// ErrNoCache is returned by ClearCache when there was nothing to remove
var ErrNoCache = errors.New("no cache file found")

// ClearCache deletes the cache file. The catalog in memory is kept.
func (s *Service) ClearCache() error {
	if !s.store.Exists() {
		return ErrNoCache
	}
	if err := s.store.Clear(); err != nil {
		s.logger.Error("failed to clear cache", zap.String("path", s.store.Path()), zap.Error(err))
		return err
	}
	s.logger.Info("cache cleared", zap.String("path", s.store.Path()))
	return nil
}
