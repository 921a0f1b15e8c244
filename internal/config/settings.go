package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-liked-searcher/internal/export"
)

// Settings keys for Fyne preferences
const (
	KeyCacheFile        = "cache_file"
	KeyClientSecretFile = "client_secret_file"
	KeyTokenFile        = "token_file"
	KeyExportDir        = "export_directory"
	KeyExportFormat     = "export_format"
	KeySearchDebounceMS = "search_debounce_ms"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultSearchDebounceMS = 300
	MinSearchDebounceMS     = 50
	MaxSearchDebounceMS     = 2000
	DefaultExportFormat     = export.FormatJSON
	DefaultLanguage         = "system"
)

// Settings manages application configuration
type Settings struct {
	app      fyne.App
	defaults Options
}

// NewSettings creates a new settings manager with file locations defaulting
// to dataDir
func NewSettings(app fyne.App, dataDir string) *Settings {
	return &Settings{app: app, defaults: DefaultOptions(dataDir)}
}

func (s *Settings) stringWithDefault(key, def string) string {
	value := s.app.Preferences().String(key)
	if value == "" {
		s.app.Preferences().SetString(key, def)
		return def
	}
	return value
}

// GetCacheFile returns the cache file path
func (s *Settings) GetCacheFile() string {
	return s.stringWithDefault(KeyCacheFile, s.defaults.CacheFile)
}

// SetCacheFile sets the cache file path; empty restores the default
func (s *Settings) SetCacheFile(path string) {
	if path == "" {
		path = s.defaults.CacheFile
	}
	s.app.Preferences().SetString(KeyCacheFile, path)
}

// GetClientSecretFile returns the OAuth client secret path
func (s *Settings) GetClientSecretFile() string {
	return s.stringWithDefault(KeyClientSecretFile, s.defaults.ClientSecretFile)
}

// SetClientSecretFile sets the OAuth client secret path; empty restores the default
func (s *Settings) SetClientSecretFile(path string) {
	if path == "" {
		path = s.defaults.ClientSecretFile
	}
	s.app.Preferences().SetString(KeyClientSecretFile, path)
}

// GetTokenFile returns the saved token path
func (s *Settings) GetTokenFile() string {
	return s.stringWithDefault(KeyTokenFile, s.defaults.TokenFile)
}

// SetTokenFile sets the saved token path; empty restores the default
func (s *Settings) SetTokenFile(path string) {
	if path == "" {
		path = s.defaults.TokenFile
	}
	s.app.Preferences().SetString(KeyTokenFile, path)
}

// GetExportDirectory returns the configured export directory
func (s *Settings) GetExportDirectory() string {
	return s.stringWithDefault(KeyExportDir, s.defaults.ExportDir)
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	if dir == "" {
		dir = s.defaults.ExportDir
	}
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetExportFormat returns the export file format
func (s *Settings) GetExportFormat() export.Format {
	format, err := export.ParseFormat(s.app.Preferences().String(KeyExportFormat))
	if err != nil {
		format = DefaultExportFormat
	}
	return format
}

// SetExportFormat sets the export file format
func (s *Settings) SetExportFormat(format export.Format) {
	s.app.Preferences().SetString(KeyExportFormat, string(format))
}

// GetExportFormatOptions returns the available export formats
func (s *Settings) GetExportFormatOptions() []export.Format {
	return export.Formats
}

// GetSearchDebounceMS returns the search debounce delay in milliseconds
func (s *Settings) GetSearchDebounceMS() int {
	value := s.app.Preferences().Int(KeySearchDebounceMS)
	if value <= 0 {
		s.SetSearchDebounceMS(DefaultSearchDebounceMS)
		return DefaultSearchDebounceMS
	}
	return value
}

// SetSearchDebounceMS sets the search debounce delay, clamped to the supported range
func (s *Settings) SetSearchDebounceMS(ms int) {
	s.app.Preferences().SetInt(KeySearchDebounceMS, ClampDebounceMS(ms))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.stringWithDefault(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options snapshots the current settings
func (s *Settings) Options() Options {
	return Options{
		CacheFile:        s.GetCacheFile(),
		ClientSecretFile: s.GetClientSecretFile(),
		TokenFile:        s.GetTokenFile(),
		ExportDir:        s.GetExportDirectory(),
		ExportFormat:     s.GetExportFormat(),
		SearchDebounce:   time.Duration(s.GetSearchDebounceMS()) * time.Millisecond,
		Language:         s.GetLanguage(),
	}
}
