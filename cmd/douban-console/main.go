package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	root := &cobra.Command{
		Use:           "douban-console",
		Short:         "Terminal console for the Douban group monitoring daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.Flags().StringVar(&opts.APIBind, "api", "", "backend address, host:port (optional)")
	root.Flags().IntVar(&opts.PageSize, "page-size", 0, "posts per page (optional, defaults to 20)")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "douban-console: %v\n", err)
		return 1
	}
	return 0
}
