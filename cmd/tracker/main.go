package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const configFileEnv = "CONFIG_FILE"

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "tracker",
		Short: "💰 Personal expense tracker",
		Long: `tracker records expenses in any currency, normalised to your home currency,
and summarises them by day, month, category and week.

It shares its store with the Telegram bot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgFile != "" {
				return os.Setenv(configFileEnv, cfgFile)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: data/config.yaml)")

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(addCmd())
	root.AddCommand(editCmd())
	root.AddCommand(deleteCmd())
	root.AddCommand(listCmd())
	root.AddCommand(dashboardCmd())
	root.AddCommand(analyticsCmd())
	root.AddCommand(convertCmd())
	root.AddCommand(categoryCmd())

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
