package main

import (
	"deliveryscheduler/cmd"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	configDir string
	cfg       cmd.Config
	logger    zerolog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "delivery-scheduler",
		Short:         "Delivery scheduling and status consistency engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(a.configDir)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cmd.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", ".", "directory holding .env and config.yaml")

	root.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newAuditCommand(a),
	)

	return root
}
