package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/api/option"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/model"
)

type fakeVideo struct {
	id, title, channel, published, description string
}

func page(next string, videos ...fakeVideo) map[string]any {
	items := make([]map[string]any, 0, len(videos))
	for _, v := range videos {
		items = append(items, map[string]any{
			"id": v.id,
			"snippet": map[string]any{
				"title":        v.title,
				"channelTitle": v.channel,
				"publishedAt":  v.published,
				"description":  v.description,
			},
		})
	}
	body := map[string]any{"kind": "youtube#videoListResponse", "items": items}
	if next != "" {
		body["nextPageToken"] = next
	}
	return body
}

// newAPI serves pages keyed by pageToken ("" for the first page)
func newAPI(t *testing.T, pages map[string]map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/videos" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("myRating") != "like" || q.Get("part") != "snippet" || q.Get("maxResults") != "50" {
			http.Error(w, "unexpected query "+r.URL.RawQuery, http.StatusBadRequest)
			return
		}
		body, ok := pages[q.Get("pageToken")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func apiError(code int, reason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		fmt.Fprintf(w, `{"error":{"code":%d,"message":"%s","errors":[{"reason":"%s","message":"%s"}]}}`, code, reason, reason, reason)
	}
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	service, err := NewService(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return NewClient(service, zaptest.NewLogger(t))
}

func TestFetchAllLikedPaginates(t *testing.T) {
	srv := newAPI(t, map[string]map[string]any{
		"": page("p2",
			fakeVideo{"b", "Rust Basics", "Ferris", "2024-06-15T18:30:00Z", "Ownership"},
			fakeVideo{"c", "advanced rust", "Crab", "2024-06-15T07:00:00Z", "Lifetimes\nand traits"},
		),
		"p2": page("",
			fakeVideo{"a", "Intro to Go", "Gopher", "2023-01-01T00:00:00Z", ""},
		),
	})
	defer srv.Close()

	var progress []int
	videos, err := newTestClient(t, srv).FetchAllLiked(context.Background(), func(n int) {
		progress = append(progress, n)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, progress)
	require.Len(t, videos, 3)
	assert.Equal(t, model.NewVideo("b", "Rust Basics", "Ferris", "2024-06-15T18:30:00Z", "Ownership"), videos[0])
	assert.Equal(t, "Lifetimes\nand traits", videos[1].Description)
	assert.Equal(t, "https://www.youtube.com/watch?v=a", videos[2].URL)
}

func TestFetchAllLikedEmpty(t *testing.T) {
	srv := newAPI(t, map[string]map[string]any{"": page("")})
	defer srv.Close()

	calls := 0
	videos, err := newTestClient(t, srv).FetchAllLiked(context.Background(), func(int) { calls++ })
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Equal(t, 1, calls)
}

func TestFetchAllLikedStopsOnRepeatedToken(t *testing.T) {
	srv := newAPI(t, map[string]map[string]any{
		"":     page("loop", fakeVideo{"a", "A", "C", "2023-01-01T00:00:00Z", ""}),
		"loop": page("loop", fakeVideo{"b", "B", "C", "2023-01-02T00:00:00Z", ""}),
	})
	defer srv.Close()

	videos, err := newTestClient(t, srv).FetchAllLiked(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestFetchAllLikedErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{"quota", apiError(http.StatusForbidden, "quotaExceeded"), apperrors.ErrQuotaExceeded},
		{"rate limit", apiError(http.StatusForbidden, "rateLimitExceeded"), apperrors.ErrQuotaExceeded},
		{"too many requests", apiError(http.StatusTooManyRequests, "tooManyRequests"), apperrors.ErrQuotaExceeded},
		{"unauthorized", apiError(http.StatusUnauthorized, "authError"), apperrors.ErrAuthentication},
		{"forbidden", apiError(http.StatusForbidden, "insufficientPermissions"), apperrors.ErrAuthentication},
		{"server error", apiError(http.StatusInternalServerError, "backendError"), apperrors.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			videos, err := newTestClient(t, srv).FetchAllLiked(context.Background(), nil)
			require.Error(t, err)
			assert.Nil(t, videos)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFetchAllLikedUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := newTestClient(t, srv)
	srv.Close()

	_, err := client.FetchAllLiked(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNetwork))
}

func TestSourceConnectFailure(t *testing.T) {
	authErr := apperrors.NewAuthenticationError("client secret missing", nil)
	source := NewSource(func(context.Context) (*http.Client, error) {
		return nil, authErr
	}, zaptest.NewLogger(t))

	_, err := source.FetchAllLiked(context.Background(), nil)
	assert.Same(t, authErr, err)
}

func TestSourceFetch(t *testing.T) {
	srv := newAPI(t, map[string]map[string]any{
		"": page("", fakeVideo{"a", "Intro to Go", "Gopher", "2023-01-01T00:00:00Z", ""}),
	})
	defer srv.Close()

	source := NewSource(func(context.Context) (*http.Client, error) {
		return srv.Client(), nil
	}, zaptest.NewLogger(t), option.WithEndpoint(srv.URL+"/"))

	videos, err := source.FetchAllLiked(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Gopher", videos[0].Channel)
}
