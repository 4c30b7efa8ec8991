package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/nikkei/config"
	"github.com/shashiranjanraj/nikkei/database/indexes"
	"github.com/shashiranjanraj/nikkei/database/seeders"
	"github.com/shashiranjanraj/nikkei/pkg/database"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
)

func withDB(cmd *cobra.Command, fn func(ctx context.Context, db *database.DB) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return err
	}
	defer db.Close(context.Background())

	return fn(ctx, db)
}

func dbIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db:indexes",
		Short: "Create the unique indexes the schema relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db *database.DB) error {
				if err := indexes.Ensure(ctx, db); err != nil {
					return err
				}
				logger.Info("indexes ensured", "database", config.MongoDatabase())
				return nil
			})
		},
	}
}

func dbSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db:seed",
		Short: "Load the demo data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db *database.DB) error {
				if err := indexes.Ensure(ctx, db); err != nil {
					return err
				}
				return seeders.Run(ctx, db)
			})
		},
	}
}
