package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/core/catalog"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/wire"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and post jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally filtered by skill and location",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		location, _ := cmd.Flags().GetString("location")

		filter := catalog.JobFilter{Skill: catalog.AllSkills, Location: location}
		if skill != "" && skill != catalog.AllSkills {
			parsed, err := parseSkill(skill)
			if err != nil {
				return err
			}
			filter.Skill = string(parsed)
		}

		wire.MarketplaceAdapter().ListJobs(commandContext(), filter)
		return nil
	},
}

var jobsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a job (posted under the logged-in employer's company)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext()
		title, _ := cmd.Flags().GetString("title")
		skillFlag, _ := cmd.Flags().GetString("skill")
		location, _ := cmd.Flags().GetString("location")
		budget, _ := cmd.Flags().GetInt("budget")
		hours, _ := cmd.Flags().GetInt("hours")
		postedBy, _ := cmd.Flags().GetString("posted-by")

		skill, err := parseSkill(skillFlag)
		if err != nil {
			return err
		}

		if postedBy == "" {
			es, ok := wire.MarketplaceService().CurrentSession(ctx).(*models.EmployerSession)
			if !ok {
				return fmt.Errorf("log in as an employer or pass --posted-by")
			}
			postedBy = catalog.EmployerKey(es)
		}

		_, err = wire.MarketplaceAdapter().PostJob(ctx, primary.AddJobRequest{
			Title:         title,
			SkillRequired: skill,
			Location:      location,
			Budget:        budget,
			Hours:         hours,
			PostedBy:      postedBy,
		})
		return err
	},
}

func init() {
	// jobs list flags
	jobsListCmd.Flags().String("skill", catalog.AllSkills, "Filter by required skill")
	jobsListCmd.Flags().String("location", "", "Filter by location (substring, case-insensitive)")

	// jobs post flags
	jobsPostCmd.Flags().String("title", "", "Job title (required)")
	jobsPostCmd.Flags().String("skill", "", "Required skill (required)")
	jobsPostCmd.Flags().String("location", "", "Job location")
	jobsPostCmd.Flags().Int("budget", 0, "Hourly budget (required)")
	jobsPostCmd.Flags().Int("hours", 0, "Estimated hours (required)")
	jobsPostCmd.Flags().String("posted-by", "", "Company name (defaults to the logged-in employer's company)")
	jobsPostCmd.MarkFlagRequired("title")
	jobsPostCmd.MarkFlagRequired("skill")
	jobsPostCmd.MarkFlagRequired("budget")
	jobsPostCmd.MarkFlagRequired("hours")

	// Register subcommands
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsPostCmd)
}

// JobsCmd returns the jobs command
func JobsCmd() *cobra.Command {
	return jobsCmd
}
