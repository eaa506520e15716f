package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/artwork-browser/internal/config"
	"github.com/ytget/artwork-browser/internal/export"
	"github.com/ytget/artwork-browser/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry       *widget.Entry
	timeoutEntry       *widget.Entry
	discardStaleCheck  *widget.Check
	rowsSelect         *widget.Select
	exportDirEntry     *widget.Entry
	exportFormatSelect *widget.Select
	languageSelect     *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
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
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))

	sd.discardStaleCheck = widget.NewCheck(text(KeyDiscardStale), nil)

	choices := model.RowsPerPageOptions()
	rowsOptions := make([]string, 0, len(choices))
	for _, r := range choices {
		rowsOptions = append(rowsOptions, strconv.Itoa(r))
	}
	sd.rowsSelect = widget.NewSelect(rowsOptions, nil)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	formatOptions := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		formatOptions = append(formatOptions, string(f))
	}
	sd.exportFormatSelect = widget.NewSelect(formatOptions, nil)

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyNetworkSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		sd.discardStaleCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyRowsPerPage)+":"),
		sd.rowsSelect,

		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(text(KeyExportFormat)+":"),
		sd.exportFormatSelect,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.discardStaleCheck.SetChecked(sd.settings.GetDiscardStaleResponses())
	sd.rowsSelect.SetSelected(strconv.Itoa(sd.settings.GetRowsPerPage()))
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.exportFormatSelect.SetSelected(string(sd.settings.GetExportFormat()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
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
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the form values. Empty or unparsable fields keep their stored
// value; unchanged network fields are skipped so environment overrides shown
// in the form are not persisted.
func (sd *SettingsDialog) save() {
	if baseURL := strings.TrimSpace(sd.baseURLEntry.Text); baseURL != "" && baseURL != sd.settings.GetAPIBaseURL() {
		sd.settings.SetAPIBaseURL(baseURL)
	}

	if secs, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil &&
		secs != int(sd.settings.GetRequestTimeout().Seconds()) {
		sd.settings.SetRequestTimeout(secs)
	}

	sd.settings.SetDiscardStaleResponses(sd.discardStaleCheck.Checked)

	if rows, err := strconv.Atoi(sd.rowsSelect.Selected); err == nil {
		sd.settings.SetRowsPerPage(rows)
	}

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if sd.exportFormatSelect.Selected != "" {
		sd.settings.SetExportFormat(export.Format(sd.exportFormatSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
