package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/model"
)

// DefaultFileName is the cache file name inside the app data directory
const DefaultFileName = "liked_videos_cache.json"

// File permissions
const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Store reads and writes the cache file at a fixed path
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a cache store for path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the cache file location
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the cache file with videos. The file is replaced
// atomically so a failed write never leaves a half-written cache.
func (s *Store) Save(videos []model.Video) error {
	if videos == nil {
		videos = []model.Video{}
	}
	data, err := Encode(videos)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := WriteFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("cache saved", zap.String("path", s.path), zap.Int("count", len(videos)))
	return nil
}

// Load reads the cache file. found is false when there is no cache file.
// An existing file that cannot be parsed yields an ErrCacheCorrupt error.
func (s *Store) Load() (videos []model.Video, found bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewCacheCorruptError(s.path, err)
	}
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, false, apperrors.NewCacheCorruptError(s.path, err)
	}
	if videos == nil {
		// a literal "null" is not a list
		return nil, false, apperrors.NewCacheCorruptError(s.path, errors.New("cache does not contain a list"))
	}
	s.logger.Debug("cache loaded", zap.String("path", s.path), zap.Int("count", len(videos)))
	return videos, true, nil
}

// Exists reports whether a cache file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Clear removes the cache file. Clearing a missing cache is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache: %w", err)
	}
	s.logger.Debug("cache cleared", zap.String("path", s.path))
	return nil
}

// Encode serializes videos as indented JSON with non-ASCII and HTML
// characters written literally.
func Encode(videos []model.Video) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(videos); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePermissions)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
