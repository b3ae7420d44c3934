package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/LLEndaya/LeaseUp/internal/app"
	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/seeding"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func initDBCmd() *cobra.Command {
	var skipSeed bool
	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the schema and seed demonstration data",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := config.LoadDBUrl(os.Getenv)
			if err != nil {
				return err
			}
			pool, err := app.ConnectDB(dbURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := cmd.Context()
			if err := repositories.CreateSchema(ctx, pool); err != nil {
				return err
			}
			utils.Logger.Info("Schema is up to date.")

			if skipSeed {
				return nil
			}
			if err := seeding.SeedAll(ctx, repositories.NewStore(pool), time.Now); err != nil {
				return err
			}
			utils.Logger.Info("Initialized the database.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipSeed, "schema-only", false, "create tables without seeding")
	return cmd
}
