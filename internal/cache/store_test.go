package cache

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", DefaultFileName), zaptest.NewLogger(t))
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		videos []model.Video
	}{
		{"empty", []model.Video{}},
		{"single", []model.Video{model.NewVideo("a1", "Intro to Go", "Gophers", "2023-01-01T10:00:00Z", "")}},
		{"unicode and newlines", []model.Video{
			model.NewVideo("b2", "Пример — テスト 🎵", "Канал", "2024-06-15T08:00:00+03:00", "line one\nline two\r\n<b>&</b>"),
			model.NewVideo("c3", "advanced rust", "ferris", "garbage-date", "Ü ß ø"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			require.NoError(t, store.Save(tt.videos))
			loaded, found, err := store.Load()

			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, tt.videos, loaded)
		})
	}
}

func TestStore_SavePreservesNonASCIILiterally(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]model.Video{model.NewVideo("x", "Привет <мир>", "ch", "", "")}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Привет <мир>")
	assert.NotContains(t, content, `\u`)
	for _, key := range []string{`"id"`, `"title"`, `"channel"`, `"published_at"`, `"description"`, `"url"`} {
		assert.Contains(t, content, key)
	}
	assert.True(t, strings.HasPrefix(content, "[\n  {"), "expected two-space indented list")
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]model.Video{model.NewVideo("a", "A", "", "", ""), model.NewVideo("b", "B", "", "", "")}))
	require.NoError(t, store.Save([]model.Video{model.NewVideo("c", "C", "", "", "")}))

	loaded, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].ID)

	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should not be left behind")
}

func TestStore_SaveNilWritesEmptyList(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(nil))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestStore_LoadMissingIsAbsent(t *testing.T) {
	store := newTestStore(t)

	videos, found, err := store.Load()

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, videos)
}

func TestStore_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `[{"id": "a", "title": "Intro`},
		{"not a list", `{"id": "a"}`},
		{"null", `null`},
		{"empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0o600))

			videos, found, err := store.Load()

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrCacheCorrupt))
			assert.False(t, found)
			assert.Nil(t, videos)
		})
	}
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	// clearing a cache that was never written is fine
	require.NoError(t, store.Clear())
	assert.False(t, store.Exists())

	require.NoError(t, store.Save([]model.Video{model.NewVideo("a", "A", "", "", "")}))
	assert.True(t, store.Exists())
	require.NoError(t, store.Clear())
	assert.False(t, store.Exists())

	_, found, err := store.Load()
	assert.NoError(t, err)
	assert.False(t, found)
}
