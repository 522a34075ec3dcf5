package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/rates"
)

func periodFlag(month string) (reports.Period, error) {
	if month == "" {
		return reports.PeriodOf(time.Now()), nil
	}
	return reports.ParsePeriod(month)
}

func dashboardCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Today, the month total, the calendar and recent expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := periodFlag(month)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				dash, err := a.reports.Dashboard(cmd.Context(), time.Now(), p)
				if err != nil {
					return err
				}
				cats, err := a.expenses.Categories(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Dashboard(dash, cats))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current)")

	return cmd
}

func analyticsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Category and weekly totals of a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := periodFlag(month)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				names, err := a.expenses.CategoryNames(cmd.Context())
				if err != nil {
					return err
				}
				an, err := a.reports.Analytics(cmd.Context(), p, names)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Analytics(an))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current)")

	return cmd
}

func convertCmd() *cobra.Command {
	var accessKey string

	cmd := &cobra.Command{
		Use:   "convert <amount> <currency>",
		Short: "Convert an amount to the home currency without saving it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				res := a.converter.Convert(cmd.Context(), args[0], args[1], accessKey)
				if res.Status != rates.Succeeded {
					return errors.New(res.Reason())
				}
				line := fmt.Sprintf("%s %s", res.Amount, a.converter.HomeCurrency())
				if res.FromCache {
					line += subtleStyle.Render(" (last known rates)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&accessKey, "access-key", "", "rate service access key (default: from config)")

	return cmd
}
