package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/workerhub/internal/ctxutil"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/wire"
)

// parseWorkerID parses a numeric worker ID argument.
func parseWorkerID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid worker ID '%s'. Worker IDs are positive numbers, e.g. 1", arg)
	}
	return id, nil
}

// parseSkill resolves a skill flag case-insensitively.
func parseSkill(value string) (models.Skill, error) {
	skill, ok := models.ParseSkill(value)
	if !ok {
		return "", fmt.Errorf("unknown skill '%s'. Valid skills: %s", value, skillList())
	}
	return skill, nil
}

// parseUserTypeFlag validates an optional --type flag.
func parseUserTypeFlag(value string) (models.UserType, error) {
	if value == "" {
		return "", nil
	}
	t, err := models.ParseUserType(strings.ToLower(value))
	if err != nil {
		return "", fmt.Errorf("invalid account type '%s'. Use worker or employer", value)
	}
	return t, nil
}

func skillList() string {
	skills := models.Skills()
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// commandContext returns a context tagged with the active session for logging.
func commandContext() context.Context {
	ctx := context.Background()
	return ctxutil.WithActorID(ctx, wire.ActorLabel(wire.MarketplaceService().CurrentSession(ctx)))
}
