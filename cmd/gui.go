package cmd

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/artwork-browser/internal/artic"
	"github.com/ytget/artwork-browser/internal/config"
	"github.com/ytget/artwork-browser/internal/export"
	"github.com/ytget/artwork-browser/internal/platform"
	"github.com/ytget/artwork-browser/internal/table"
	"github.com/ytget/artwork-browser/internal/ui"
)

const (
	AppID   = "com.ytget.artwork-browser"
	AppName = "Artwork Browser"
)

// runGUI opens the main window and blocks until it is closed
func runGUI(version string) error {
	log.Info().Str("version", version).Msg("Artwork Browser starting")

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	settings.LoadEnvironment()

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		log.Warn().Err(err).Str("dir", exportDir).Msg("Failed to ensure export directory")
	}

	client := artic.NewClient(settings.GetAPIBaseURL(), settings.GetRequestTimeout())
	tbl := table.New(client,
		table.WithRowsPerPage(settings.GetRowsPerPage()),
		table.WithSelectionMode(settings.GetSelectionMode()),
		table.WithStaleResponses(!settings.GetDiscardStaleResponses()),
	)
	defer tbl.Close()

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(window, tbl, settings, export.NewService(), client.BaseURL())

	tbl.Mount()
	window.ShowAndRun()
	return nil
}
