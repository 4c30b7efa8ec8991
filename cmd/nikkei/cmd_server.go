package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/nikkei/config"
	"github.com/shashiranjanraj/nikkei/internal/server"
	"github.com/shashiranjanraj/nikkei/pkg/database"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			db, err := database.Open(ctx, config.MongoURI(), config.MongoDatabase())
			if err != nil {
				return err
			}
			defer db.Close(context.Background())

			r, err := server.NewRouter(db)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, info := range r.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Method, info.Path, info.Name)
			}
			return w.Flush()
		},
	}
}
