// Package catalog derives filtered and aggregated views over marketplace collections.
// Every function is pure and preserves input order.
package catalog

import (
	"strings"

	"github.com/example/workerhub/internal/models"
)

// AllSkills matches every skill.
const AllSkills = "All"

// DefaultMaxRate is the default hourly rate ceiling. Workers priced above it
// are excluded unless the caller raises MaxRate.
const DefaultMaxRate = 1000

// WorkerFilter selects workers by skill, location and rate ceiling.
type WorkerFilter struct {
	Skill    string // AllSkills or a skill name
	Location string // case-insensitive substring, empty matches all
	MaxRate  int
}

// JobFilter selects jobs by required skill and location.
type JobFilter struct {
	Skill    string
	Location string
}

// DefaultWorkerFilter returns the filter that matches every worker at or
// below DefaultMaxRate.
func DefaultWorkerFilter() WorkerFilter {
	return WorkerFilter{Skill: AllSkills, MaxRate: DefaultMaxRate}
}

// DefaultJobFilter returns the filter that matches every job.
func DefaultJobFilter() JobFilter {
	return JobFilter{Skill: AllSkills}
}

// FilterWorkers returns the workers matching f, in input order.
func FilterWorkers(workers []models.Worker, f WorkerFilter) []models.Worker {
	result := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		if !skillMatches(f.Skill, w.Skill) {
			continue
		}
		if !locationMatches(f.Location, w.Location) {
			continue
		}
		if w.Rate > f.MaxRate {
			continue
		}
		result = append(result, w)
	}
	return result
}

// FilterJobs returns the jobs matching f, in input order.
func FilterJobs(jobs []models.Job, f JobFilter) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if !skillMatches(f.Skill, j.SkillRequired) {
			continue
		}
		if !locationMatches(f.Location, j.Location) {
			continue
		}
		result = append(result, j)
	}
	return result
}

func skillMatches(want string, have models.Skill) bool {
	return want == "" || want == AllSkills || models.Skill(want) == have
}

func locationMatches(want, have string) bool {
	if want == "" {
		return true
	}
	return strings.Contains(strings.ToLower(have), strings.ToLower(want))
}
