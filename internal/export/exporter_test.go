package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/model"
)

func fixedExporter(t *testing.T, dir string, format Format) *Exporter {
	t.Helper()
	e := NewExporter(dir, format, zaptest.NewLogger(t))
	e.now = func() time.Time {
		return time.Date(2024, 6, 15, 18, 30, 5, 0, time.UTC)
	}
	return e
}

func sampleVideos() []model.Video {
	return []model.Video{
		model.NewVideo("b1", "Rust Basics", "Ferris", "2024-06-15T18:30:00Z", "Ownership"),
		model.NewVideo("a1", "Привет мир", "Канал", "2023-01-01T00:00:00Z", "line1\nline2"),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{" YAML ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportResultsJSON(t *testing.T) {
	dir := t.TempDir()
	e := fixedExporter(t, dir, FormatJSON)

	path, err := e.ExportResults(sampleVideos())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "youtube_liked_search_results_20240615_183005.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Привет мир")
	assert.Contains(t, string(data), `"published_at": "2024-06-15T18:30:00Z"`)

	var got []model.Video
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleVideos(), got)
}

func TestExportAllYAML(t *testing.T) {
	dir := t.TempDir()
	e := fixedExporter(t, dir, FormatYAML)

	path, err := e.ExportAll(sampleVideos())
	require.NoError(t, err)
	assert.Equal(t, "youtube_all_liked_videos_20240615_183005.yaml", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []model.Video
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sampleVideos(), got)
}

func TestExportEmptyList(t *testing.T) {
	dir := t.TempDir()
	e := fixedExporter(t, dir, FormatJSON)

	_, err := e.ExportResults(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExport))
	assert.True(t, errors.Is(err, ErrNothingToExport))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// a regular file in place of the export directory
	e := fixedExporter(t, filepath.Join(blocker, "exports"), FormatJSON)
	_, err := e.ExportAll(sampleVideos())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeExport, apperrors.TypeOf(err))
}
