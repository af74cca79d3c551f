package main

import (
	"deliveryscheduler/cmd"
	"deliveryscheduler/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	var withSources bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the engine tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := cmd.OpenDatabase(a.cfg.DB)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if withSources {
				if err = postgres.MigrateSourceTables(db); err != nil {
					return err
				}
				a.logger.Info().Msg("source tables migrated")
			}

			if err = postgres.Migrate(db); err != nil {
				return err
			}
			a.logger.Info().Msg("engine tables migrated")
			return nil
		},
	}
	c.Flags().BoolVar(&withSources, "with-sources", false, "also create the order tables (local development only)")

	return c
}
