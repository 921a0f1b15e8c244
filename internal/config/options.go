package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ytget/yt-liked-searcher/internal/auth"
	"github.com/ytget/yt-liked-searcher/internal/cache"
	"github.com/ytget/yt-liked-searcher/internal/export"
	"github.com/ytget/yt-liked-searcher/internal/platform"
)

// Environment variables read by FromEnv
const (
	EnvDataDir          = "YTLS_DATA_DIR"
	EnvCacheFile        = "YTLS_CACHE_FILE"
	EnvClientSecretFile = "YTLS_CLIENT_SECRET"
	EnvTokenFile        = "YTLS_TOKEN_FILE"
	EnvExportDir        = "YTLS_EXPORT_DIR"
	EnvExportFormat     = "YTLS_EXPORT_FORMAT"
	EnvSearchDebounceMS = "YTLS_SEARCH_DEBOUNCE_MS"
	EnvLanguage         = "YTLS_LANGUAGE"
)

// Options is a snapshot of the effective configuration
type Options struct {
	CacheFile        string
	ClientSecretFile string
	TokenFile        string
	ExportDir        string
	ExportFormat     export.Format
	SearchDebounce   time.Duration
	Language         string
}

// DefaultDataDir returns the directory holding the cache, token and client
// secret by default
func DefaultDataDir() string {
	dir, err := platform.GetAppDataDir()
	if err != nil {
		return filepath.Join(os.TempDir(), platform.AppDirName)
	}
	return dir
}

// DefaultExportDir returns the Downloads directory, or the working directory
// when there is none
func DefaultExportDir() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return "."
	}
	return dir
}

// DefaultOptions returns the configuration with every file in dataDir
func DefaultOptions(dataDir string) Options {
	return Options{
		CacheFile:        filepath.Join(dataDir, cache.DefaultFileName),
		ClientSecretFile: filepath.Join(dataDir, auth.DefaultClientSecretFileName),
		TokenFile:        filepath.Join(dataDir, auth.DefaultTokenFileName),
		ExportDir:        DefaultExportDir(),
		ExportFormat:     export.FormatJSON,
		SearchDebounce:   DefaultSearchDebounceMS * time.Millisecond,
		Language:         DefaultLanguage,
	}
}

// FromEnv builds options from environment variables, falling back to the
// defaults for anything unset
func FromEnv() Options {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Options {
	getParam := func(param, def string) string {
		if val, ok := lookup(param); ok && val != "" {
			return val
		}
		return def
	}

	dataDir := getParam(EnvDataDir, "")
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	opts := DefaultOptions(dataDir)

	opts.CacheFile = getParam(EnvCacheFile, opts.CacheFile)
	opts.ClientSecretFile = getParam(EnvClientSecretFile, opts.ClientSecretFile)
	opts.TokenFile = getParam(EnvTokenFile, opts.TokenFile)
	opts.ExportDir = getParam(EnvExportDir, opts.ExportDir)
	opts.Language = getParam(EnvLanguage, opts.Language)

	if format, err := export.ParseFormat(getParam(EnvExportFormat, "")); err == nil {
		opts.ExportFormat = format
	}
	if ms, err := strconv.Atoi(getParam(EnvSearchDebounceMS, "")); err == nil {
		opts.SearchDebounce = time.Duration(ClampDebounceMS(ms)) * time.Millisecond
	}
	return opts
}

// ClampDebounceMS keeps a debounce delay within the supported range
func ClampDebounceMS(ms int) int {
	if ms < MinSearchDebounceMS {
		return MinSearchDebounceMS
	}
	if ms > MaxSearchDebounceMS {
		return MaxSearchDebounceMS
	}
	return ms
}
