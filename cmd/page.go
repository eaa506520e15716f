package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ytget/artwork-browser/internal/export"
	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/table"
)

const (
	formatTable = "table"

	// longest cell the table format prints
	maxCellWidth = 40
)

func newPageCmd() *cobra.Command {
	var (
		flags  pageFlags
		format string
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of artworks",
		Long: `Fetches one page from the artworks API and prints it as a table,
YAML or JSON.`,
		Example: `  # Print the first page
  artwork-browser page

  # Print page 3 as YAML, first 10 records only
  artwork-browser page --page 3 --rows 10 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows != 0 && !model.IsValidRowsPerPage(rows) {
				return fmt.Errorf("%w: got %d", table.ErrInvalidRowsPerPage, rows)
			}

			state, client, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}

			records := state.Records
			if rows != 0 {
				state.RowsPerPage = rows
				records = state.VisibleRecords()
			}

			out := cmd.OutOrStdout()
			if format == formatTable {
				return writeTable(out, state, records)
			}

			f, err := export.ParseFormat(format)
			if err != nil || f == export.FormatParquet {
				return fmt.Errorf("%w: %q (use table, yaml or json)", export.ErrUnsupportedFormat, format)
			}
			source := export.Source{BaseURL: client.BaseURL(), Page: state.Page}
			return export.NewService().Write(out, f, source, records)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, yaml or json")
	cmd.Flags().IntVar(&rows, "rows", 0, "Print only the first N records (5, 10, 25 or 50); 0 prints the whole page")

	return cmd
}

// writeTable prints records as aligned columns followed by a page summary
func writeTable(w io.Writer, state table.ViewState, records []model.Artwork) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := []string{"ID"}
	for _, c := range table.Columns {
		headers = append(headers, strings.ToUpper(c.Header))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range records {
		cells := []string{fmt.Sprint(r.ID)}
		for _, c := range table.Columns {
			cells = append(cells, truncate(c.Value(r), maxCellWidth))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if state.Pagination.Known() {
		_, err := fmt.Fprintf(w, "\npage %d of %d, %d records\n", state.Page, state.Pagination.TotalPages, len(records))
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d, %d records\n", state.Page, len(records))
	return err
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
