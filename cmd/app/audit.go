package main

import (
	"fmt"

	"deliveryscheduler/cmd"
	"deliveryscheduler/internal/adapters/out/kafka/ledger"

	"github.com/spf13/cobra"
)

func newAuditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run the consistency audit once; exits non-zero when drift is found",
		RunE: func(c *cobra.Command, _ []string) error {
			db, err := cmd.OpenDatabase(a.cfg.DB)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			root := cmd.NewCompositionRoot(a.cfg, db, ledger.NewLogLedger(a.logger), nil, a.logger)

			n, err := root.CreateConsistencyAuditJob().RunOnce(c.Context())
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%d schedules disagree with their source rows", n)
			}

			a.logger.Info().Msg("no drift found")
			return nil
		},
	}
}
