package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/wire"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for the logged-in worker or employer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MarketplaceAdapter().Dashboard(commandContext())
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Show marketplace totals, revenue and recent bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire.MarketplaceAdapter().Admin(commandContext())
		return nil
	},
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show how many workers offer each skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire.MarketplaceAdapter().Skills(commandContext())
		return nil
	},
}

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	return dashboardCmd
}

// AdminCmd returns the admin command
func AdminCmd() *cobra.Command {
	return adminCmd
}

// SkillsCmd returns the skills command
func SkillsCmd() *cobra.Command {
	return skillsCmd
}
