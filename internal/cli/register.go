package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/wire"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a worker or employer account",
}

var registerWorkerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Register as a worker and create your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		phone, _ := cmd.Flags().GetString("phone")
		skillFlag, _ := cmd.Flags().GetString("skill")
		experience, _ := cmd.Flags().GetInt("experience")
		rate, _ := cmd.Flags().GetInt("rate")
		location, _ := cmd.Flags().GetString("location")
		availability, _ := cmd.Flags().GetString("availability")

		skill, err := parseSkill(skillFlag)
		if err != nil {
			return err
		}

		_, err = wire.AccountAdapter().RegisterWorker(commandContext(), primary.RegisterWorkerRequest{
			Name:         name,
			Email:        email,
			Password:     password,
			Phone:        phone,
			Skill:        skill,
			Experience:   experience,
			Rate:         rate,
			Location:     location,
			Availability: availability,
		})
		return err
	},
}

var registerEmployerCmd = &cobra.Command{
	Use:   "employer",
	Short: "Register as an employer",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		company, _ := cmd.Flags().GetString("company")
		location, _ := cmd.Flags().GetString("location")
		phone, _ := cmd.Flags().GetString("phone")

		_, err := wire.AccountAdapter().RegisterEmployer(commandContext(), primary.RegisterEmployerRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Company:  company,
			Location: location,
			Phone:    phone,
		})
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{registerWorkerCmd, registerEmployerCmd} {
		c.Flags().String("name", "", "Full name (required)")
		c.Flags().String("email", "", "Email (required)")
		c.Flags().String("password", "", "Password (required)")
		c.Flags().String("phone", "", "Phone (required)")
		c.Flags().String("location", "", "Location")
		c.MarkFlagRequired("name")
		c.MarkFlagRequired("email")
		c.MarkFlagRequired("password")
		c.MarkFlagRequired("phone")
	}

	// register worker flags
	registerWorkerCmd.Flags().String("skill", "", "Skill (required)")
	registerWorkerCmd.Flags().Int("experience", 0, "Years of experience")
	registerWorkerCmd.Flags().Int("rate", 0, "Hourly rate (required)")
	registerWorkerCmd.Flags().String("availability", "", "Availability, e.g. 9am-6pm")
	registerWorkerCmd.MarkFlagRequired("skill")
	registerWorkerCmd.MarkFlagRequired("rate")

	// register employer flags
	registerEmployerCmd.Flags().String("company", "", "Company name (required)")
	registerEmployerCmd.MarkFlagRequired("company")

	// Register subcommands
	registerCmd.AddCommand(registerWorkerCmd)
	registerCmd.AddCommand(registerEmployerCmd)
}

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	return registerCmd
}
