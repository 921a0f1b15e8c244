package youtube

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// HTTPClientFunc returns an authorized HTTP client, signing the user in if needed
type HTTPClientFunc func(ctx context.Context) (*http.Client, error)

// Source connects on every fetch so credential and setting changes take effect
// without a restart
type Source struct {
	connect HTTPClientFunc
	opts    []option.ClientOption
	logger  *zap.Logger
}

// NewSource creates a remote source authorizing through connect
func NewSource(connect HTTPClientFunc, logger *zap.Logger, opts ...option.ClientOption) *Source {
	return &Source{connect: connect, opts: opts, logger: logger}
}

// FetchAllLiked authorizes and fetches every liked video
func (s *Source) FetchAllLiked(ctx context.Context, progress ProgressFunc) ([]model.Video, error) {
	httpClient, err := s.connect(ctx)
	if err != nil {
		return nil, classify(err)
	}
	service, err := NewService(ctx, httpClient, s.opts...)
	if err != nil {
		return nil, classify(err)
	}
	return NewClient(service, s.logger).FetchAllLiked(ctx, progress)
}
