package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/cli"
	"github.com/example/workerhub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "workerhub",
		Short:   "WorkerHub - marketplace for industrial workers and employers",
		Version: version.String(),
		Long: `WorkerHub connects employers with skilled industrial workers.
Browse workers and jobs, post jobs, book workers by the hour, and view
dashboards. Accounts are verified against the auth API (see 'workerhub serve').`,
		SilenceUsage: true,
	}

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())
	rootCmd.AddCommand(cli.RegisterCmd())

	// Marketplace
	rootCmd.AddCommand(cli.WorkersCmd())
	rootCmd.AddCommand(cli.JobsCmd())
	rootCmd.AddCommand(cli.BookCmd())
	rootCmd.AddCommand(cli.BookingsCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.AdminCmd())
	rootCmd.AddCommand(cli.SkillsCmd())

	// Operations
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
