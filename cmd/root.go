package cmd

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Without a subcommand it opens the
// desktop window.
func NewRootCmd(version string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "artwork-browser",
		Short: "Browse the Art Institute of Chicago collection",
		Long: `Artwork Browser shows the Art Institute of Chicago artworks API as a
paginated, multi-select table.

Run without arguments to open the desktop window, or use the page and export
subcommands to work with one page of artworks from the terminal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(version)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newPageCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
