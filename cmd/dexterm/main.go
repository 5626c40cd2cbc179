package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/dexterm/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dexterm: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "dexterm",
		Short: "Browse the PokéAPI catalog in your terminal",
		Long: `dexterm pages through the PokéAPI Pokémon list, shows each entry as a
card and lets you filter by type, search by name or number and open a detail
panel with stats, abilities and the species description.

Logs are written to the file named by log_file in the config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/dexterm/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/dexterm/prefs.toml)")
	flags.StringVar(&opts.APIURL, "api-url", "", "PokéAPI root, overrides api_url")
	flags.IntVar(&opts.PageSize, "page-size", 0, "entries per page, overrides page_size")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newListCmd(&opts))
	return root
}

func newListCmd(opts *app.Options) *cobra.Command {
	var listOpts app.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog without the interactive UI",
		Example: `  dexterm list --pages 3 --type fire
  dexterm list --search char --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(*opts)
			if err != nil {
				return err
			}
			defer env.Close()
			return app.List(cmd.Context(), env, listOpts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&listOpts.Pages, "pages", 1, "number of pages to fetch")
	cmd.Flags().StringVarP(&listOpts.Category, "type", "t", "", "only show this type")
	cmd.Flags().StringVarP(&listOpts.Search, "search", "s", "", "name or number substring")
	cmd.Flags().BoolVar(&listOpts.JSON, "json", false, "print JSON instead of text")
	return cmd
}
