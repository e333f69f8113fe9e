package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
)

func newCollegeCmd() *cobra.Command {
	college := &cobra.Command{
		Use:   "college",
		Short: "Administer registered colleges",
	}
	college.AddCommand(&cobra.Command{
		Use:       "set-status <college-id> <pending|approved|rejected>",
		Short:     "Approve, reject or reset a college registration",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"pending", "approved", "rejected"},
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

			svc := service.NewCollegeService(store.repos.Colleges, nil, nil, nil, logr, service.CollegeConfig{})
			if err := svc.SetStatus(cmd.Context(), args[0], models.CollegeStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "college %s is now %s\n", args[0], args[1])
			return nil
		},
	})
	return college
}
