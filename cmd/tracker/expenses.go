package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/palette"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/view"
)

type expenseFlags struct {
	currency  string
	category  string
	date      string
	time      string
	note      string
	accessKey string
}

func (f *expenseFlags) timeOfDay() (*expense.TimeOfDay, error) {
	if f.time == "" {
		return nil, nil
	}
	t, err := expense.ParseTimeOfDay(f.time)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func addCmd() *cobra.Command {
	var flags expenseFlags

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Long: `Record an expense. Amounts in another currency are converted to the home
currency with the latest rates; nothing is saved when that fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tod, err := flags.timeOfDay()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				rec, err := a.expenses.AddExpense(cmd.Context(), expenses.Draft{
					Name:      flags.note,
					Amount:    args[0],
					Currency:  flags.currency,
					AccessKey: flags.accessKey,
					Date:      flags.date,
					Time:      tod,
					Category:  flags.category,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ Saved #%d %s", rec.ID, view.Amount(a.renderer.Home(), rec))))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flags.currency, "currency", "", "currency of the amount (default: home currency)")
	cmd.Flags().StringVar(&flags.category, "category", "", "category name")
	cmd.Flags().StringVar(&flags.date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&flags.time, "time", "", "time as HH:MM (default: now)")
	cmd.Flags().StringVar(&flags.note, "note", "", "note (default: \"<amount> <category>\")")
	cmd.Flags().StringVar(&flags.accessKey, "access-key", "", "rate service access key (default: from config)")

	return cmd
}

func editCmd() *cobra.Command {
	var (
		flags  expenseFlags
		amount float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace fields of an expense",
		Long:  `Replace fields of an expense. The amount is taken as already in the home currency. Unknown ids are created.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "parse id")
			}
			tod, err := flags.timeOfDay()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app) error {
				rec, err := a.expenses.GetExpense(cmd.Context(), id)
				switch {
				case errors.Is(err, storage.ErrNotFound):
					rec = expense.Record{ID: id}
				case err != nil:
					return err
				}
				if cmd.Flags().Changed("amount") {
					rec.Amount = expense.Amount(amount)
				}
				if flags.category != "" {
					rec.Category = flags.category
				}
				if flags.date != "" {
					rec.Date = flags.date
				}
				if tod != nil {
					rec.Time = tod
				}
				if flags.note != "" {
					rec.Name = flags.note
				}

				if rec, err = a.expenses.ModifyExpense(cmd.Context(), rec); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ Updated #%d", rec.ID)))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in the home currency")
	cmd.Flags().StringVar(&flags.category, "category", "", "category name")
	cmd.Flags().StringVar(&flags.date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.time, "time", "", "time as HH:MM")
	cmd.Flags().StringVar(&flags.note, "note", "", "note")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "parse id")
			}
			return withApp(cmd.Context(), func(a *app) error {
				if err := a.expenses.DeleteExpense(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ Deleted #%d", id)))
				return nil
			})
		},
	}
}

func listCmd() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				list, err := a.expenses.Expenses(cmd.Context(), expense.SortOption(sortBy))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, subtleStyle.Render("No expenses yet. Use 'tracker add' to record one."))
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				defer w.Flush()

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					headerStyle.Render("ID"),
					headerStyle.Render("Date"),
					headerStyle.Render("Time"),
					headerStyle.Render("Category"),
					headerStyle.Render("Amount"),
					headerStyle.Render("Note"))
				for _, e := range list {
					when := "-"
					if e.Time != nil {
						when = e.Time.String()
					}
					name := e.CategoryOrDefault()
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Date, when,
						categoryStyle(palette.ColorFor(name)).Render(palette.IconFor(name)+" "+name),
						view.Amount(a.renderer.Home(), e), e.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", string(expense.SortNewest), "one of amount-asc, amount-desc, newest, oldest, category-asc, category-desc")

	return cmd
}
