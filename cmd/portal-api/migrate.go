package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations (postgres) or create indexes (mongo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logr, err := bootstrap()
			if err != nil {
				return err
			}
			defer logr.Sync() //nolint:errcheck

			store, err := openBackend(cmd.Context(), cfg, logr)
			if err != nil {
				return err
			}
			defer store.close(cmd.Context()) //nolint:errcheck

			if err := store.migrate(cmd.Context()); err != nil {
				return err
			}
			logr.Info("migration complete", zap.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}
