package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ytget/artwork-browser/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		flags pageFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one page of artworks to a file",
		Long: `Fetches one page from the artworks API and writes it to a file.
The format follows the file extension: .yaml/.yml, .json or .parquet.`,
		Example: `  # Save page 2 as Parquet
  artwork-browser export --page 2 --out artworks.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := export.FormatFromPath(out); err != nil {
				return err
			}

			state, client, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}

			source := export.Source{BaseURL: client.BaseURL(), Page: state.Page}
			if err := export.NewService().ExportFile(out, source, state.Records); err != nil {
				return fmt.Errorf("export page %d: %w", state.Page, err)
			}

			log.Debug().Str("path", out).Int("records", len(state.Records)).Msg("Page exported")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d artworks to %s\n", len(state.Records), out)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.yaml, .json or .parquet)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
