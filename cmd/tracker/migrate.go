package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.New()
			if err != nil {
				return errors.Wrap(err, "init config")
			}
			if err = storage.RunMigrations(conf.Storage()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓ Schema is up to date"))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default categories on an empty store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				// newApp already seeded; report what is there now
				names, err := a.expenses.CategoryNames(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ %d categories", len(names))))
				return nil
			})
		},
	}
}
