package youtube

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/ytget/yt-liked-searcher/internal/model"
)

// PageSize is the maximum page size videos.list accepts
const PageSize = 50

// ProgressFunc receives the running number of videos loaded
type ProgressFunc func(loaded int)

// Client lists liked videos through an authorized API service
type Client struct {
	service *yt.Service
	logger  *zap.Logger
}

// NewClient wraps an API service
func NewClient(service *yt.Service, logger *zap.Logger) *Client {
	return &Client{service: service, logger: logger}
}

// NewService creates an API service sending requests through httpClient
func NewService(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*yt.Service, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return service, nil
}

// FetchAllLiked pages through every liked video, newest like first, calling
// progress after each page
func (c *Client) FetchAllLiked(ctx context.Context, progress ProgressFunc) ([]model.Video, error) {
	var videos []model.Video
	seen := make(map[string]bool)
	pageToken := ""

	for page := 1; ; page++ {
		call := c.service.Videos.
			List([]string{"snippet"}).
			MyRating("like").
			MaxResults(PageSize).
			Context(ctx)

		if pageToken != "" {
			call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			c.logger.Warn("liked videos page failed", zap.Int("page", page), zap.Error(err))
			return nil, classify(err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil {
				continue
			}
			videos = append(videos, model.NewVideo(
				item.Id,
				item.Snippet.Title,
				item.Snippet.ChannelTitle,
				item.Snippet.PublishedAt,
				item.Snippet.Description,
			))
		}

		c.logger.Debug("liked videos page loaded", zap.Int("page", page), zap.Int("items", len(response.Items)), zap.Int("total", len(videos)))
		if progress != nil {
			progress(len(videos))
		}

		pageToken = response.NextPageToken
		if pageToken == "" || seen[pageToken] {
			break
		}
		seen[pageToken] = true
	}

	c.logger.Info("liked videos fetched", zap.Int("count", len(videos)))
	return videos, nil
}
