package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/models"
)

func newUpdateFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "update"}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("skill", "", "")
	cmd.Flags().Int("rate", 0, "")
	cmd.Flags().Int("experience", 0, "")
	cmd.Flags().String("availability", "", "")
	cmd.Flags().String("location", "", "")
	cmd.Flags().String("status", "", "")
	cmd.Flags().String("phone", "", "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	return cmd
}

func TestUpdateRequestFromFlags_OnlyChangedFields(t *testing.T) {
	cmd := newUpdateFlagsCmd(t, "--rate", "700", "--status", "offline", "--skill", "welder")

	req, err := updateRequestFromFlags(cmd)
	if err != nil {
		t.Fatalf("updateRequestFromFlags failed: %v", err)
	}

	if req.Rate == nil || *req.Rate != 700 {
		t.Errorf("Rate = %v, want 700", req.Rate)
	}
	if req.Status == nil || *req.Status != "offline" {
		t.Errorf("Status = %v, want offline", req.Status)
	}
	if req.Skill == nil || *req.Skill != models.SkillWelder {
		t.Errorf("Skill = %v, want Welder", req.Skill)
	}
	if req.Name != nil || req.Location != nil || req.Experience != nil {
		t.Error("unset flags should leave fields nil")
	}
}

func TestUpdateRequestFromFlags_ZeroValueIsKept(t *testing.T) {
	cmd := newUpdateFlagsCmd(t, "--experience", "0")

	req, err := updateRequestFromFlags(cmd)
	if err != nil {
		t.Fatalf("updateRequestFromFlags failed: %v", err)
	}
	if req.Experience == nil || *req.Experience != 0 {
		t.Errorf("Experience = %v, want explicit 0", req.Experience)
	}
}

func TestUpdateRequestFromFlags_NothingToUpdate(t *testing.T) {
	if _, err := updateRequestFromFlags(newUpdateFlagsCmd(t)); err == nil {
		t.Error("expected error when no field flags are given")
	}
}

func TestUpdateRequestFromFlags_BadSkill(t *testing.T) {
	if _, err := updateRequestFromFlags(newUpdateFlagsCmd(t, "--skill", "astronaut")); err == nil {
		t.Error("expected error for unknown skill")
	}
}
