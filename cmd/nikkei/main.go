// Command nikkei runs the e-commerce GraphQL API and its maintenance
// tasks.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/nikkei/config"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "nikkei",
		Short:         "GraphQL API for the nikkei store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Load()
		},
	}

	root.AddCommand(
		serveCmd(),
		routeListCmd(),
		dbIndexesCmd(),
		dbSeedCmd(),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
