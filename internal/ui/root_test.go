package ui

import (
	"context"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/cache"
	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/library"
	"github.com/ytget/yt-liked-searcher/internal/model"
	"github.com/ytget/yt-liked-searcher/internal/youtube"
)

type stubRemote struct {
	videos []model.Video
	err    error
}

func (s *stubRemote) FetchAllLiked(_ context.Context, progress youtube.ProgressFunc) ([]model.Video, error) {
	if s.err != nil {
		return nil, s.err
	}
	if progress != nil {
		progress(len(s.videos))
	}
	return s.videos, nil
}

func sampleVideos() []model.Video {
	return []model.Video{
		model.NewVideo("a1", "Learning Go", "Gophers", "2024-03-01T10:00:00Z", "Channels and goroutines"),
		model.NewVideo("b2", "Bread baking", "Kitchen", "2024-02-01T10:00:00Z", ""),
		model.NewVideo("c3", "Go generics", "Gophers", "2024-01-01T10:00:00Z", "Type parameters"),
	}
}

func newTestRootUI(t *testing.T) (*RootUI, *library.Service, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app, t.TempDir())
	settings.SetExportDirectory(t.TempDir())
	logger := zaptest.NewLogger(t)

	lib := library.NewFromOptions(settings.Options(), &stubRemote{}, logger)
	window := app.NewWindow("test")
	return NewRootUI(window, app, settings, lib, "test", logger), lib, settings
}

func TestRootUI_StartsEmpty(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	assert.Equal(t, "No videos loaded", ui.resultsLabel.Text)
	assert.Equal(t, "Open Selected Video", ui.openBtn.Text)
	assert.Empty(t, ui.selectedID)
}

func TestRootUI_FinishRefreshAppliesVideos(t *testing.T) {
	ui, lib, _ := newTestRootUI(t)

	ui.refreshing = true
	ui.finishRefresh(sampleVideos(), nil)

	assert.False(t, ui.refreshing)
	assert.Equal(t, "Showing all 3 videos", ui.resultsLabel.Text)
	assert.Equal(t, "Loaded 3 liked videos", ui.statusLabel.Text)
	assert.True(t, lib.CacheExists())
}

func TestRootUI_FailedRefreshKeepsCatalog(t *testing.T) {
	ui, lib, _ := newTestRootUI(t)
	ui.finishRefresh(sampleVideos(), nil)

	ui.refreshing = true
	ui.finishRefresh(nil, apperrors.NewQuotaExceededError("daily quota used", nil))

	assert.False(t, ui.refreshing)
	shown, total := lib.Counts()
	assert.Equal(t, 3, shown)
	assert.Equal(t, 3, total)
	assert.Equal(t, "Refresh failed, showing the previous list", ui.statusLabel.Text)
}

func TestRootUI_SearchNarrowsView(t *testing.T) {
	ui, lib, _ := newTestRootUI(t)
	ui.finishRefresh(sampleVideos(), nil)

	ui.searchEntry.SetText("gophers")
	ui.onSearchNow()

	assert.False(t, ui.debouncer.Pending())
	assert.Equal(t, "Showing 2 of 3 videos", ui.resultsLabel.Text)
	assert.Len(t, lib.View(), 2)

	ui.searchEntry.SetText("")
	ui.onSearchNow()
	assert.Equal(t, "Showing all 3 videos", ui.resultsLabel.Text)
}

func TestRootUI_RefreshClearsSearch(t *testing.T) {
	ui, lib, _ := newTestRootUI(t)
	ui.finishRefresh(sampleVideos(), nil)
	ui.searchEntry.SetText("bread")
	ui.onSearchNow()
	require.Len(t, lib.View(), 1)

	ui.finishRefresh(sampleVideos()[:2], nil)

	assert.Empty(t, ui.searchEntry.Text)
	assert.False(t, ui.debouncer.Pending())
	assert.Equal(t, "Showing all 2 videos", ui.resultsLabel.Text)
}

func TestRootUI_HeaderTapSortsAndClearsSelection(t *testing.T) {
	ui, lib, _ := newTestRootUI(t)
	ui.finishRefresh(sampleVideos(), nil)
	ui.onVideoSelected(lib.View()[0])
	require.Equal(t, "a1", ui.selectedID)

	ui.onHeaderTapped(model.SortByTitle)
	assert.Equal(t, model.Ascending, lib.Indicator(model.SortByTitle))
	assert.Equal(t, "Bread baking", lib.View()[0].Title)
	assert.Empty(t, ui.selectedID)

	ui.onHeaderTapped(model.SortByTitle)
	assert.Equal(t, model.Descending, lib.Indicator(model.SortByTitle))
	assert.Equal(t, "Learning Go", lib.View()[0].Title)
}

func TestRootUI_StartLoadsCache(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	settings := config.NewSettings(app, t.TempDir())
	logger := zaptest.NewLogger(t)

	require.NoError(t, cache.NewStore(settings.GetCacheFile(), logger).Save(sampleVideos()))

	lib := library.NewFromOptions(settings.Options(), &stubRemote{}, logger)
	ui := NewRootUI(app.NewWindow("test"), app, settings, lib, "test", logger)
	ui.Start()

	assert.Equal(t, "Loaded 3 videos from cache", ui.statusLabel.Text)
	assert.Equal(t, "Showing all 3 videos", ui.resultsLabel.Text)
}

func TestRootUI_SettingsSavedReconfigures(t *testing.T) {
	ui, lib, settings := newTestRootUI(t)
	ui.finishRefresh(sampleVideos(), nil)
	require.True(t, lib.CacheExists())

	settings.SetCacheFile(filepath.Join(t.TempDir(), "other.json"))
	settings.SetSearchDebounceMS(120)
	ui.onSettingsSaved()

	assert.False(t, lib.CacheExists())
	assert.Equal(t, settings.Options().SearchDebounce, ui.debouncer.Delay())
	_, total := lib.Counts()
	assert.Equal(t, 3, total)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestRootUI(t)

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, ui.localization.GetText(KeyOpenSelected), ui.openBtn.Text)
	assert.NotEqual(t, "Open Selected Video", ui.openBtn.Text)

	assert.Equal(t, "Подробности", ui.details.card.Subtitle)
	assert.Equal(t, "Выберите видео, чтобы увидеть подробности", ui.details.title.Text)
	for label, key := range ui.details.captions {
		assert.Equal(t, ui.details.captionText(key), label.Text)
	}
	assert.Contains(t, detailsCaptionTexts(ui.details), "Канал:")
	assert.NotContains(t, detailsCaptionTexts(ui.details), "Channel:")
}

func detailsCaptionTexts(d *DetailsPane) []string {
	var texts []string
	for label := range d.captions {
		texts = append(texts, label.Text)
	}
	return texts
}

func TestResultsSummary(t *testing.T) {
	loc := NewLocalization()

	tests := []struct {
		name         string
		shown, total int
		query        string
		want         string
	}{
		{"empty catalog", 0, 0, "", "No videos loaded"},
		{"all shown", 5, 5, "", "Showing all 5 videos"},
		{"query matching everything", 5, 5, "go", "Showing 5 of 5 videos"},
		{"some shown", 2, 5, "go", "Showing 2 of 5 videos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultsSummary(loc, tt.shown, tt.total, tt.query))
		})
	}
}
