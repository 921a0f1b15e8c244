package ui

import (
	"context"
	"errors"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/debounce"
	"github.com/ytget/yt-liked-searcher/internal/export"
	"github.com/ytget/yt-liked-searcher/internal/library"
	"github.com/ytget/yt-liked-searcher/internal/model"
	"github.com/ytget/yt-liked-searcher/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	library      *library.Service
	logger       *zap.Logger
	version      string

	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	table        *ResultsTable
	details      *DetailsPane
	statusLabel  *widget.Label
	resultsLabel *widget.Label
	spinner      *widget.ProgressBarInfinite
	openBtn      *widget.Button
	refreshBtn   *widget.Button
	exportBtn    *widget.Button

	debouncer  *debounce.Debouncer
	language   string
	selectedID string
	refreshing bool
}

// NewRootUI creates and initializes the main UI. Call Start once the window is shown.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, lib *library.Service, version string, logger *zap.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		library:      lib,
		logger:       logger,
		version:      version,
		language:     settings.GetLanguage(),
		debouncer:    debounce.New(settings.Options().SearchDebounce),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()
	ui.createShortcuts()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(t(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = func(string) { ui.onSearchNow() }
	ui.searchBtn = widget.NewButton(t(KeySearch), ui.onSearchNow)
	searchRow := container.NewBorder(nil, nil, widget.NewLabel(IconSearch), ui.searchBtn, ui.searchEntry)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	ui.resultsLabel = widget.NewLabel("")

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	statusRow := container.NewBorder(nil, nil, settingsBtn, ui.spinner, ui.statusLabel)

	ui.table = NewResultsTable(ui.localization, ui.library.View, ui.library.Indicator)
	ui.table.SetCallbacks(ui.onHeaderTapped, ui.onVideoSelected)

	ui.details = NewDetailsPane(ui.localization)

	ui.openBtn = widget.NewButton(t(KeyOpenSelected), ui.onOpenSelected)
	ui.openBtn.Importance = widget.HighImportance
	ui.refreshBtn = widget.NewButton(t(KeyRefreshVideos), ui.onRefresh)
	ui.exportBtn = widget.NewButton(t(KeyExportResults), ui.onExportResults)
	buttons := container.NewHBox(ui.openBtn, ui.refreshBtn, ui.exportBtn)

	top := container.NewVBox(statusRow, searchRow, ui.resultsLabel)
	bottom := container.NewVBox(ui.details.Widget(), container.NewCenter(buttons))
	split := container.NewVSplit(ui.table.Widget(), bottom)
	split.Offset = 0.62

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, split))
	ui.updateResultsLabel()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	quitItem := fyne.NewMenuItem(t(KeyQuit), ui.app.Quit)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeyMenuLoadCache), func() { ui.loadFromCache(true) }),
		fyne.NewMenuItem(t(KeyMenuRefresh), ui.onRefresh),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyMenuExportCurrent), ui.onExportResults),
		fyne.NewMenuItem(t(KeyMenuExportAll), ui.onExportAll),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyMenuClearCache), ui.onClearCache),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
		quitItem,
	)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	helpMenu := fyne.NewMenu(t(KeyHelp),
		fyne.NewMenuItem(t(KeyMenuShortcuts), ui.showShortcuts),
		fyne.NewMenuItem(t(KeyMenuHowTo), ui.showHowTo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyMenuAbout), ui.showAbout),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu, helpMenu))
}

// createShortcuts binds Ctrl+R, Ctrl+E, Ctrl+Q and F1
func (ui *RootUI) createShortcuts() {
	canvas := ui.window.Canvas()
	bind := func(key fyne.KeyName, action func()) {
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
			action()
		})
	}
	bind(fyne.KeyR, ui.onRefresh)
	bind(fyne.KeyE, ui.onExportResults)
	bind(fyne.KeyQ, ui.app.Quit)

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyF1 {
			ui.showHowTo()
		}
	})
}

// Start loads the cache, or greets the user when there is none
func (ui *RootUI) Start() {
	ui.loadFromCache(false)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.language = langCode
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(t(KeySearchPlaceholder))
	ui.searchBtn.SetText(t(KeySearch))
	ui.openBtn.SetText(t(KeyOpenSelected))
	ui.refreshBtn.SetText(t(KeyRefreshVideos))
	ui.exportBtn.SetText(t(KeyExportResults))
	ui.details.RefreshTexts()
	ui.table.Reload()
	ui.clearSelection()
	ui.updateResultsLabel()
}

// onSearchChanged schedules a search for the text typed so far
func (ui *RootUI) onSearchChanged(string) {
	ui.debouncer.Trigger(func() {
		fyne.Do(func() {
			ui.applySearch(ui.searchEntry.Text)
		})
	})
}

// onSearchNow runs the search without waiting for the debounce delay
func (ui *RootUI) onSearchNow() {
	ui.debouncer.Cancel()
	ui.applySearch(ui.searchEntry.Text)
}

// applySearch filters the catalog and redraws the table
func (ui *RootUI) applySearch(query string) {
	ui.library.Search(query)
	ui.table.Reload()
	ui.clearSelection()
	ui.updateResultsLabel()
}

// resetSearch empties the search field without scheduling a search
func (ui *RootUI) resetSearch() {
	ui.searchEntry.SetText("")
	ui.debouncer.Cancel()
}

// onHeaderTapped sorts by the clicked column
func (ui *RootUI) onHeaderTapped(field model.SortField) {
	ui.library.SortBy(field)
	ui.table.Reload()
	ui.clearSelection()
}

// onVideoSelected shows the details of the selected row
func (ui *RootUI) onVideoSelected(v model.Video) {
	ui.selectedID = v.ID
	ui.details.Show(v)
}

func (ui *RootUI) clearSelection() {
	ui.selectedID = ""
	ui.details.Clear()
}

// updateResultsLabel shows how much of the catalog is visible
func (ui *RootUI) updateResultsLabel() {
	shown, total := ui.library.Counts()
	ui.resultsLabel.SetText(resultsSummary(ui.localization, shown, total, ui.library.Query()))
}

// resultsSummary describes the view for the results line
func resultsSummary(loc *Localization, shown, total int, query string) string {
	switch {
	case total == 0:
		return loc.GetText(KeyStatusNoVideos)
	case shown == total && query == "":
		return loc.Textf(KeyStatusShowingAll, total)
	default:
		return loc.Textf(KeyStatusShowingSome, shown, total)
	}
}

// setBusy shows an activity message with the spinner
func (ui *RootUI) setBusy(message string) {
	ui.statusLabel.SetText(message)
	ui.spinner.Show()
	ui.spinner.Start()
}

// setStatus shows a message with the spinner hidden
func (ui *RootUI) setStatus(message string) {
	ui.spinner.Stop()
	ui.spinner.Hide()
	ui.statusLabel.SetText(message)
}

// onOpenSelected opens the selected video in the browser
func (ui *RootUI) onOpenSelected() {
	if ui.selectedID == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeySelectVideoFirst), ui.window)
		return
	}
	v, ok := ui.library.Lookup(ui.selectedID)
	if !ok {
		ui.clearSelection()
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeySelectVideoFirst), ui.window)
		return
	}
	ui.openURL(v.Link())
}

func (ui *RootUI) openURL(raw string) {
	u, err := url.Parse(raw)
	if err == nil {
		err = ui.app.OpenURL(u)
	}
	if err != nil {
		ui.logger.Warn("failed to open link", zap.String("url", raw), zap.Error(err))
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningURL)+": "+err.Error()), ui.window)
	}
}

// loadFromCache replaces the catalog with the cache file. interactive
// reports the outcome in a dialog; otherwise a missing cache shows the
// welcome dialog.
func (ui *RootUI) loadFromCache(interactive bool) {
	t := ui.localization.GetText

	n, found, err := ui.library.LoadFromCache()
	if err != nil {
		ui.setStatus(t(KeyCacheCorrupt))
	}
	if !found {
		if interactive {
			dialog.ShowInformation(t(KeyCacheMissingTitle), t(KeyCacheMissing), ui.window)
		} else {
			ui.showWelcome()
		}
		return
	}

	ui.resetSearch()
	ui.table.Reload()
	ui.clearSelection()
	ui.updateResultsLabel()
	ui.setStatus(ui.localization.Textf(KeyStatusLoadedCache, n))
	if interactive {
		dialog.ShowInformation(t(KeyCacheLoadedTitle), ui.localization.Textf(KeyCacheLoadedMessage, n), ui.window)
	}
}

// showWelcome offers the first load from YouTube
func (ui *RootUI) showWelcome() {
	t := ui.localization.GetText
	d := dialog.NewConfirm(t(KeyWelcomeTitle), t(KeyWelcomeMessage), func(ok bool) {
		if ok {
			ui.onRefresh()
		}
	}, ui.window)
	d.SetConfirmText(t(KeyLoadNow))
	d.SetDismissText(t(KeyLater))
	d.Show()
}

// onRefresh loads the liked list from YouTube in the background
func (ui *RootUI) onRefresh() {
	if ui.refreshing {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyRefreshInProgress), ui.window)
		return
	}
	ui.refreshing = true
	ui.refreshBtn.Disable()
	ui.setBusy(ui.localization.GetText(KeyStatusLoading))

	go func() {
		videos, err := ui.library.Fetch(context.Background(), func(loaded int) {
			fyne.Do(func() {
				ui.statusLabel.SetText(ui.localization.Textf(KeyStatusLoadingCount, loaded))
			})
		})
		fyne.Do(func() {
			ui.finishRefresh(videos, err)
		})
	}()
}

// finishRefresh applies a fetch result on the UI goroutine
func (ui *RootUI) finishRefresh(videos []model.Video, err error) {
	ui.refreshing = false
	ui.refreshBtn.Enable()

	if err != nil {
		ui.setStatus(ui.localization.GetText(KeyStatusRefreshFailed))
		ui.showError(err)
		return
	}

	res := ui.library.Apply(videos)
	ui.resetSearch()
	ui.table.Reload()
	ui.clearSelection()
	ui.updateResultsLabel()
	ui.setStatus(ui.localization.Textf(KeyStatusLoadedRemote, res.Loaded))

	if res.CacheErr != nil {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.Textf(KeyCacheSaveFailed, res.CacheErr), ui.window)
	}
}

// showError reports err with a hint on what to do next
func (ui *RootUI) showError(err error) {
	ui.logger.Warn("operation failed", zap.String("type", string(apperrors.TypeOf(err))), zap.Error(err))
	dialog.ShowError(errors.New(apperrors.UserMessage(err)), ui.window)
}

func (ui *RootUI) onExportResults() {
	ui.runExport(ui.library.ExportResults, KeyExportResultsDone, len(ui.library.View()))
}

func (ui *RootUI) onExportAll() {
	ui.runExport(ui.library.ExportAll, KeyExportAllDone, len(ui.library.All()))
}

func (ui *RootUI) runExport(write func() (string, error), doneKey string, count int) {
	t := ui.localization.GetText

	path, err := write()
	if err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			dialog.ShowInformation(t(KeyWarning), t(KeyNothingToExport), ui.window)
			return
		}
		ui.showError(err)
		return
	}

	message := widget.NewLabel(ui.localization.Textf(doneKey, count, path))
	message.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustomConfirm(t(KeyExportCompleteTitle), t(KeyShowInFolder), t(KeyClose), message, func(reveal bool) {
		if reveal {
			ui.onRevealFile(path)
		}
	}, ui.window)
	d.Resize(fyne.NewSize(DialogWidth, 0))
	d.Show()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("failed to reveal file", zap.String("path", filePath), zap.Error(err))
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}

// onClearCache deletes the cache file after confirmation
func (ui *RootUI) onClearCache() {
	t := ui.localization.GetText
	if !ui.library.CacheExists() {
		dialog.ShowInformation(t(KeyClearCacheTitle), t(KeyNoCacheToClear), ui.window)
		return
	}

	dialog.ShowConfirm(t(KeyClearCacheTitle), t(KeyClearCacheConfirm), func(ok bool) {
		if !ok {
			return
		}
		if err := ui.library.ClearCache(); err != nil {
			if errors.Is(err, library.ErrNoCache) {
				dialog.ShowInformation(t(KeyClearCacheTitle), t(KeyNoCacheToClear), ui.window)
				return
			}
			ui.showError(err)
			return
		}
		dialog.ShowInformation(t(KeyClearCacheTitle), t(KeyCacheCleared), ui.window)
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved points the library at the new files and applies the
// new debounce delay and language
func (ui *RootUI) onSettingsSaved() {
	opts := ui.settings.Options()
	ui.library.Reconfigure(opts)

	ui.debouncer.Cancel()
	ui.debouncer = debounce.New(opts.SearchDebounce)

	if opts.Language != ui.language {
		ui.onLanguageChange(opts.Language)
	}
}

func (ui *RootUI) showShortcuts() {
	ui.showTextDialog(KeyMenuShortcuts, ui.localization.GetText(KeyShortcutsText), true)
}

func (ui *RootUI) showHowTo() {
	ui.showTextDialog(KeyMenuHowTo, ui.localization.GetText(KeyHowToText), false)
}

func (ui *RootUI) showAbout() {
	text := ui.localization.GetText(KeyAppTitle)
	if ui.version != "" {
		text += MiddleDotSeparator + ui.version
	}
	ui.showTextDialog(KeyMenuAbout, text+"\n\n"+ui.localization.GetText(KeyAboutText), false)
}

// showTextDialog shows scrollable help text
func (ui *RootUI) showTextDialog(titleKey, text string, monospace bool) {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: monospace}

	d := dialog.NewCustom(ui.localization.GetText(titleKey), ui.localization.GetText(KeyClose), container.NewVScroll(label), ui.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}
