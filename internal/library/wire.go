package library

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/auth"
	"github.com/ytget/yt-liked-searcher/internal/cache"
	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/export"
	"github.com/ytget/yt-liked-searcher/internal/youtube"
)

// NewYouTubeSource returns a remote source that signs in with the files
// named by options at every fetch, so changed settings apply to the next
// refresh.
func NewYouTubeSource(options func() config.Options, open auth.URLOpener, logger *zap.Logger) *youtube.Source {
	connect := func(ctx context.Context) (*http.Client, error) {
		opts := options()
		oauthConfig, err := auth.LoadClientConfig(opts.ClientSecretFile)
		if err != nil {
			return nil, err
		}
		flow := auth.NewFlow(oauthConfig, auth.NewTokenStore(opts.TokenFile), open, logger)
		return flow.HTTPClient(ctx)
	}
	return youtube.NewSource(connect, logger)
}

// NewFromOptions builds a service on the cache file and export settings of opts
func NewFromOptions(opts config.Options, remote RemoteSource, logger *zap.Logger) *Service {
	return NewService(
		cache.NewStore(opts.CacheFile, logger),
		remote,
		export.NewExporter(opts.ExportDir, opts.ExportFormat, logger),
		logger,
	)
}

// Reconfigure points the service at the cache file and export settings of
// opts. The catalog is kept.
func (s *Service) Reconfigure(opts config.Options) {
	s.SetCacheStore(cache.NewStore(opts.CacheFile, s.logger))
	s.SetExporter(export.NewExporter(opts.ExportDir, opts.ExportFormat, s.logger))
	s.logger.Info("library reconfigured",
		zap.String("cache", opts.CacheFile),
		zap.String("export_dir", opts.ExportDir),
		zap.String("export_format", string(opts.ExportFormat)))
}
