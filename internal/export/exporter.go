package export

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/cache"
	"github.com/ytget/yt-liked-searcher/internal/model"
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats, default first
var Formats = []Format{FormatJSON, FormatYAML}

// File name prefixes
const (
	ResultsPrefix   = "youtube_liked_search_results"
	AllVideosPrefix = "youtube_all_liked_videos"
	TimestampLayout = "20060102_150405"
)

// ErrNothingToExport is returned when the list to export is empty
var ErrNothingToExport = errors.New("no videos to export")

// ParseFormat converts a format name; an empty name selects JSON
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// Extension returns the file extension without the dot
func (f Format) Extension() string {
	return string(f)
}

// Exporter writes export files into a directory
type Exporter struct {
	dir    string
	format Format
	now    func() time.Time
	logger *zap.Logger
}

// NewExporter creates an exporter writing files of format into dir
func NewExporter(dir string, format Format, logger *zap.Logger) *Exporter {
	return &Exporter{
		dir:    dir,
		format: format,
		now:    time.Now,
		logger: logger,
	}
}

// ExportResults writes the current search results and returns the file path
func (e *Exporter) ExportResults(videos []model.Video) (string, error) {
	return e.write(ResultsPrefix, videos)
}

// ExportAll writes the whole catalog and returns the file path
func (e *Exporter) ExportAll(videos []model.Video) (string, error) {
	return e.write(AllVideosPrefix, videos)
}

// FileName builds the timestamped file name for prefix
func (e *Exporter) FileName(prefix string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, e.now().Format(TimestampLayout), e.format.Extension())
}

func (e *Exporter) write(prefix string, videos []model.Video) (string, error) {
	if len(videos) == 0 {
		return "", apperrors.NewExportError("nothing to export", ErrNothingToExport)
	}

	data, err := Marshal(videos, e.format)
	if err != nil {
		return "", apperrors.NewExportError("could not encode videos", err)
	}

	path := filepath.Join(e.dir, e.FileName(prefix))
	if err := cache.WriteFileAtomic(path, data); err != nil {
		return "", apperrors.NewExportError("could not write "+path, err)
	}

	e.logger.Info("videos exported", zap.String("path", path), zap.Int("count", len(videos)), zap.String("format", string(e.format)))
	return path, nil
}

// Marshal encodes videos in format
func Marshal(videos []model.Video, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(videos); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		return cache.Encode(videos)
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}
