package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/core/catalog"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/wire"
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Browse and manage worker profiles",
}

var workersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workers, optionally filtered by skill, location and rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		location, _ := cmd.Flags().GetString("location")
		maxRate, _ := cmd.Flags().GetInt("max-rate")

		filter := catalog.WorkerFilter{
			Skill:    catalog.AllSkills,
			Location: location,
			MaxRate:  wire.Config().MaxRate,
		}
		if skill != "" && skill != catalog.AllSkills {
			parsed, err := parseSkill(skill)
			if err != nil {
				return err
			}
			filter.Skill = string(parsed)
		}
		if cmd.Flags().Changed("max-rate") {
			filter.MaxRate = maxRate
		}

		wire.MarketplaceAdapter().ListWorkers(commandContext(), filter)
		return nil
	},
}

var workersShowCmd = &cobra.Command{
	Use:   "show [worker-id]",
	Short: "Show a worker profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkerID(args[0])
		if err != nil {
			return err
		}
		_, err = wire.MarketplaceAdapter().ShowWorker(commandContext(), id)
		return err
	},
}

var workersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a worker profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		skillFlag, _ := cmd.Flags().GetString("skill")
		rate, _ := cmd.Flags().GetInt("rate")
		experience, _ := cmd.Flags().GetInt("experience")
		availability, _ := cmd.Flags().GetString("availability")
		location, _ := cmd.Flags().GetString("location")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		skill, err := parseSkill(skillFlag)
		if err != nil {
			return err
		}

		_, err = wire.MarketplaceAdapter().AddWorker(commandContext(), primary.AddWorkerRequest{
			Name:         name,
			Skill:        skill,
			Rate:         rate,
			Experience:   experience,
			Availability: availability,
			Location:     location,
			Email:        email,
			Phone:        phone,
		})
		return err
	},
}

var workersUpdateCmd = &cobra.Command{
	Use:   "update [worker-id]",
	Short: "Update a worker profile (defaults to the logged-in worker)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()

		var id int64
		if len(args) == 1 {
			parsed, err := parseWorkerID(args[0])
			if err != nil {
				return err
			}
			id = parsed
		} else {
			ws, ok := wire.MarketplaceService().CurrentSession(ctx).(*models.WorkerSession)
			if !ok {
				return fmt.Errorf("no worker ID given and not logged in as a worker")
			}
			id = ws.ID
		}

		req, err := updateRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		_, err = wire.MarketplaceAdapter().UpdateWorker(ctx, id, req)
		return err
	},
}

// updateRequestFromFlags sets only the fields whose flags were given.
func updateRequestFromFlags(cmd *cobra.Command) (primary.UpdateWorkerRequest, error) {
	var req primary.UpdateWorkerRequest
	flags := cmd.Flags()

	stringField := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	intField := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}

	req.Name = stringField("name")
	req.Rate = intField("rate")
	req.Experience = intField("experience")
	req.Availability = stringField("availability")
	req.Location = stringField("location")
	req.Status = stringField("status")
	req.Phone = stringField("phone")

	if raw := stringField("skill"); raw != nil {
		skill, err := parseSkill(*raw)
		if err != nil {
			return req, err
		}
		req.Skill = &skill
	}

	if req.WorkerUpdate().IsEmpty() {
		return req, fmt.Errorf("nothing to update: pass at least one field flag")
	}
	return req, nil
}

func init() {
	// workers list flags
	workersListCmd.Flags().String("skill", catalog.AllSkills, "Filter by skill ("+skillList()+")")
	workersListCmd.Flags().String("location", "", "Filter by location (substring, case-insensitive)")
	workersListCmd.Flags().Int("max-rate", catalog.DefaultMaxRate, "Maximum hourly rate")

	// workers add flags
	workersAddCmd.Flags().String("name", "", "Worker name (required)")
	workersAddCmd.Flags().String("skill", "", "Skill (required)")
	workersAddCmd.Flags().Int("rate", 0, "Hourly rate (required)")
	workersAddCmd.Flags().Int("experience", 0, "Years of experience")
	workersAddCmd.Flags().String("availability", "", "Availability, e.g. 9am-6pm")
	workersAddCmd.Flags().String("location", "", "Location")
	workersAddCmd.Flags().String("email", "", "Email")
	workersAddCmd.Flags().String("phone", "", "Phone")
	workersAddCmd.MarkFlagRequired("name")
	workersAddCmd.MarkFlagRequired("skill")
	workersAddCmd.MarkFlagRequired("rate")

	// workers update flags
	workersUpdateCmd.Flags().String("name", "", "New name")
	workersUpdateCmd.Flags().String("skill", "", "New skill")
	workersUpdateCmd.Flags().Int("rate", 0, "New hourly rate")
	workersUpdateCmd.Flags().Int("experience", 0, "New years of experience")
	workersUpdateCmd.Flags().String("availability", "", "New availability")
	workersUpdateCmd.Flags().String("location", "", "New location")
	workersUpdateCmd.Flags().String("status", "", "online or offline")
	workersUpdateCmd.Flags().String("phone", "", "New phone")

	// Register subcommands
	workersCmd.AddCommand(workersListCmd)
	workersCmd.AddCommand(workersShowCmd)
	workersCmd.AddCommand(workersAddCmd)
	workersCmd.AddCommand(workersUpdateCmd)
}

// WorkersCmd returns the workers command
func WorkersCmd() *cobra.Command {
	return workersCmd
}
