// Package session contains the pure rule that turns a login payload into a Session.
package session

import (
	"fmt"

	"github.com/example/workerhub/internal/models"
)

// Payload is the user data presented at login. Employer-only fields are
// ignored for workers.
type Payload struct {
	ID       int64
	Name     string
	Type     models.UserType
	Email    string
	Company  string
	Location string
	Phone    string
}

// Placeholder builds the minimal worker used when a worker logs in without a
// local worker record.
func Placeholder(p Payload) models.Worker {
	return models.Worker{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Skill:        models.SkillUnknown,
		Rate:         0,
		Experience:   0,
		Availability: "Unknown",
		Location:     "Unknown",
		Status:       models.WorkerStatusOnline,
	}
}

// Resolve returns the Session for p.
// Workers resolve to the stored worker with the same id, or to a placeholder
// when none exists. Employers resolve to the payload as given.
func Resolve(workers []models.Worker, p Payload) (models.Session, error) {
	switch p.Type {
	case models.UserTypeWorker:
		for _, w := range workers {
			if w.ID == p.ID {
				return &models.WorkerSession{Worker: w}, nil
			}
		}
		return &models.WorkerSession{Worker: Placeholder(p)}, nil
	case models.UserTypeEmployer:
		return &models.EmployerSession{
			ID:       p.ID,
			Name:     p.Name,
			Email:    p.Email,
			Company:  p.Company,
			Location: p.Location,
			Phone:    p.Phone,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownUserType, p.Type)
	}
}
