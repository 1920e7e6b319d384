package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/wire"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		typeFlag, _ := cmd.Flags().GetString("type")

		userType, err := parseUserTypeFlag(typeFlag)
		if err != nil {
			return err
		}

		_, err = wire.AccountAdapter().Login(commandContext(), email, password, userType)
		return err
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.MarketplaceService().Logout(commandContext())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire.MarketplaceAdapter().WhoAmI(commandContext())
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email (required)")
	loginCmd.Flags().String("password", "", "Account password (required)")
	loginCmd.Flags().String("type", "", "Account type: worker or employer")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	return loginCmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return logoutCmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return whoamiCmd
}
