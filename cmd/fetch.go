package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytget/artwork-browser/internal/artic"
	"github.com/ytget/artwork-browser/internal/config"
	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/table"
)

// pageFlags are shared by the commands that fetch one page
type pageFlags struct {
	baseURL string
	timeout time.Duration
	page    int

	flags *pflag.FlagSet
}

func (f *pageFlags) register(cmd *cobra.Command) {
	f.flags = cmd.Flags()
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "Artworks API base URL (default $"+config.EnvAPIBaseURL+" or "+artic.DefaultBaseURL+")")
	cmd.Flags().DurationVar(&f.timeout, "timeout", artic.DefaultTimeout, "HTTP request timeout (default $"+config.EnvRequestTimeout+" or 30s)")
	cmd.Flags().IntVarP(&f.page, "page", "p", model.FirstPage, "1-based page number")
}

// client builds the API client. Flags win over the environment, which wins
// over the client defaults.
func (f *pageFlags) client() *artic.Client {
	baseURL := f.baseURL
	if baseURL == "" {
		baseURL = config.EnvBaseURL()
	}

	timeout := f.timeout
	if f.flags == nil || !f.flags.Changed("timeout") {
		if envTimeout, ok := config.EnvTimeout(); ok {
			timeout = envTimeout
		}
	}
	return artic.NewClient(baseURL, timeout)
}

// load fetches the requested page through the table component so the CLI
// sees exactly what the window would
func (f *pageFlags) load(ctx context.Context) (table.ViewState, *artic.Client, error) {
	client := f.client()
	tbl := table.New(client)
	defer tbl.Close()

	if err := tbl.LoadPage(ctx, f.page); err != nil {
		return table.ViewState{}, client, err
	}
	return tbl.State(), client, nil
}
