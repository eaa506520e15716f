package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/artwork-browser/internal/config"
	"github.com/ytget/artwork-browser/internal/export"
	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/platform"
	"github.com/ytget/artwork-browser/internal/table"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	table        *table.ArtworkTable
	exporter     export.Exporter
	settings     *config.Settings
	localization *Localization
	baseURL      string

	dataTable      *DataTable
	paginator      *Paginator
	loadingBar     *widget.ProgressBarInfinite
	selectionLabel *widget.Label
	exportBtn      *widget.Button
	clearBtn       *widget.Button
	settingsBtn    *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	revealBtn             *widget.Button
	lastExportPath        string
	notificationTimer     *time.Timer

	content fyne.CanvasObject
}

// NewRootUI creates and initializes the main UI. baseURL is the API base the
// table's fetcher talks to; it is recorded in exports.
func NewRootUI(window fyne.Window, tbl *table.ArtworkTable, settings *config.Settings, exporter export.Exporter, baseURL string) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		table:        tbl,
		exporter:     exporter,
		settings:     settings,
		localization: localization,
		baseURL:      baseURL,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callback for table updates
	tbl.SetUpdateCallback(ui.onStateUpdate)
	ui.render(tbl.State())

	log.Debug().Str("base_url", baseURL).Str("mode", tbl.State().Mode.String()).Msg("RootUI initialized")
	return ui
}

// Content returns the window content, useful when embedding the UI in tests
func (ui *RootUI) Content() fyne.CanvasObject {
	return ui.content
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.dataTable = NewDataTable(ui.localization, ui.table)
	ui.paginator = NewPaginator(ui.localization, ui.table.OnPageTurn, ui.onRowsPerPageChange)

	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingBar.Stop()
	ui.loadingBar.Hide()

	ui.selectionLabel = widget.NewLabel("")
	ui.exportBtn = widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExportSelection), ui.onExportSelection)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearSelection), func() {
		ui.table.OnSelectionChange(nil)
	})
	ui.clearBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(ui.settingsBtn, ui.selectionLabel, ui.clearBtn),
		ui.exportBtn,
	)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyShowInFolder), ui.onRevealExport)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.revealBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(toolbar, ui.notificationContainer, ui.loadingBar)

	ui.content = container.NewBorder(top, ui.paginator.Container(), nil, nil, ui.dataTable.Widget())
	ui.window.SetContent(ui.content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportSelection), ui.onExportSelection)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, settingsItem),
		languageMenu,
	))
}

// onStateUpdate is the table's update callback; it may run on any goroutine
func (ui *RootUI) onStateUpdate(table.ViewState) {
	fyne.Do(func() {
		// always render the newest snapshot, callbacks can arrive out of order
		ui.render(ui.table.State())
	})
}

// render draws state. Must be called on the UI goroutine.
func (ui *RootUI) render(state table.ViewState) {
	ui.dataTable.SetState(state)
	ui.paginator.Update(state)

	if state.Loading {
		ui.loadingBar.Show()
		ui.loadingBar.Start()
	} else {
		ui.loadingBar.Stop()
		ui.loadingBar.Hide()
	}

	ui.selectionLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySelectedCount), len(state.Selected)))
	if len(state.Selected) == 0 {
		ui.clearBtn.Disable()
	} else {
		ui.clearBtn.Enable()
	}
}

func (ui *RootUI) onRowsPerPageChange(rows int) {
	if err := ui.table.SetRowsPerPage(rows); err != nil {
		log.Warn().Err(err).Msg("Ignoring rows per page choice")
		return
	}
	ui.settings.SetRowsPerPage(rows)
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.exportBtn.SetText(IconExport + " " + ui.localization.GetText(KeyExportSelection))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearSelection))
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyShowInFolder))
	ui.paginator.RefreshTexts()
	ui.dataTable.Refresh()
	ui.render(ui.table.State())
}

// onExportSelection writes the current selection to the export directory in
// the configured format
func (ui *RootUI) onExportSelection() {
	state := ui.table.State()
	if len(state.Selected) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNothingSelected), "")
		return
	}

	format := ui.settings.GetExportFormat()
	path := platform.ExportFilePath(ui.settings.GetExportDirectory(), string(format), time.Now())
	// the selection can hold records from several pages
	source := export.Source{BaseURL: ui.baseURL}
	records := state.Selected

	ui.exportBtn.Disable()
	go func() {
		err := ui.exporter.ExportFile(path, source, records)
		fyne.Do(func() {
			ui.exportBtn.Enable()
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("Export failed")
				ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), "")
				return
			}
			log.Info().Str("path", path).Ints("ids", selectionIDs(records)).Msg("Selection exported")
			ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyExported), len(records), path), path)
		})
	}()
}

func (ui *RootUI) onRevealExport() {
	if ui.lastExportPath == "" {
		return
	}
	if err := platform.OpenFileInManager(ui.lastExportPath); err != nil {
		log.Error().Err(err).Str("path", ui.lastExportPath).Msg("Error revealing export")
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), "")
	}
}

// showNotification displays a message in the notification panel. A non-empty
// path enables the reveal button. Must be called on the UI goroutine.
func (ui *RootUI) showNotification(message, path string) {
	ui.lastExportPath = path
	ui.notificationLabel.SetText(message)
	if path != "" {
		ui.revealBtn.Show()
	} else {
		ui.revealBtn.Hide()
	}
	ui.notificationContainer.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if rows := ui.settings.GetRowsPerPage(); rows != ui.table.State().RowsPerPage {
			ui.onRowsPerPageChange(rows)
		}
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
		ui.showNotification(ui.localization.GetText(KeySettingsSaved), "")
	})
}

func selectionIDs(records []model.Artwork) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
