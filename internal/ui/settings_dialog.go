package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/export"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	cacheFileEntry    *widget.Entry
	secretFileEntry   *widget.Entry
	tokenFileEntry    *widget.Entry
	exportDirEntry    *widget.Entry
	exportFormatGroup *widget.RadioGroup
	debounceEntry     *widget.Entry
	languageSelect    *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after the
// settings were written
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, loc, window, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.cacheFileEntry = widget.NewEntry()
	sd.tokenFileEntry = widget.NewEntry()

	sd.secretFileEntry = widget.NewEntry()
	browseSecretBtn := widget.NewButton(IconFolder+" "+t(KeyBrowse), sd.onBrowseSecretFile)
	secretRow := container.NewBorder(nil, nil, nil, browseSecretBtn, sd.secretFileEntry)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+t(KeyBrowse), sd.onBrowseExportDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	formatOptions := []string{}
	for _, format := range sd.settings.GetExportFormatOptions() {
		formatOptions = append(formatOptions, string(format))
	}
	sd.exportFormatGroup = widget.NewRadioGroup(formatOptions, nil)
	sd.exportFormatGroup.Horizontal = true
	sd.exportFormatGroup.Required = true

	sd.debounceEntry = widget.NewEntry()
	sd.debounceEntry.SetPlaceHolder(strconv.Itoa(config.MinSearchDebounceMS) + "-" + strconv.Itoa(config.MaxSearchDebounceMS))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(t(KeyFilesSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(t(KeyClientSecretFile)+":"),
		secretRow,
		widget.NewLabel(t(KeyTokenFile)+":"),
		sd.tokenFileEntry,
		widget.NewLabel(t(KeyCacheFile)+":"),
		sd.cacheFileEntry,

		widget.NewLabelWithStyle(t(KeyExportSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(t(KeyExportDirectory)+":"),
		exportDirRow,
		widget.NewLabel(t(KeyExportFormat)+":"),
		sd.exportFormatGroup,

		widget.NewLabelWithStyle(t(KeyInterfaceSection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(t(KeySearchDebounce)+":"),
		sd.debounceEntry,
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.cacheFileEntry.SetText(sd.settings.GetCacheFile())
	sd.secretFileEntry.SetText(sd.settings.GetClientSecretFile())
	sd.tokenFileEntry.SetText(sd.settings.GetTokenFile())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.exportFormatGroup.SetSelected(string(sd.settings.GetExportFormat()))
	sd.debounceEntry.SetText(strconv.Itoa(sd.settings.GetSearchDebounceMS()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseSecretFile picks the OAuth client secret file
func (sd *SettingsDialog) onBrowseSecretFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.secretFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onBrowseExportDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseExportDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to the settings
func (sd *SettingsDialog) apply() {
	// empty paths restore the defaults
	sd.settings.SetCacheFile(sd.cacheFileEntry.Text)
	sd.settings.SetClientSecretFile(sd.secretFileEntry.Text)
	sd.settings.SetTokenFile(sd.tokenFileEntry.Text)
	sd.settings.SetExportDirectory(sd.exportDirEntry.Text)

	if format, err := export.ParseFormat(sd.exportFormatGroup.Selected); err == nil {
		sd.settings.SetExportFormat(format)
	}

	if ms, err := strconv.Atoi(sd.debounceEntry.Text); err == nil {
		sd.settings.SetSearchDebounceMS(ms)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
