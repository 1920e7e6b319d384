package catalog

import (
	"reflect"
	"testing"

	"github.com/example/workerhub/internal/models"
)

func sampleWorkers() []models.Worker {
	return []models.Worker{
		{ID: 1, Name: "Ravi Kumar", Skill: models.SkillWelder, Rate: 300, Location: "Chennai"},
		{ID: 2, Name: "Imran Khan", Skill: models.SkillPolisher, Rate: 250, Location: "Hyderabad"},
		{ID: 3, Name: "Suresh Babu", Skill: models.SkillElectrician, Rate: 350, Location: "Chennai"},
		{ID: 4, Name: "Vijay Singh", Skill: models.SkillCarpenter, Rate: 400, Location: "Bangalore"},
		{ID: 5, Name: "Costly Welder", Skill: models.SkillWelder, Rate: 1500, Location: "North Chennai"},
	}
}

func ids(workers []models.Worker) []int64 {
	out := make([]int64, 0, len(workers))
	for _, w := range workers {
		out = append(out, w.ID)
	}
	return out
}

func TestFilterWorkers(t *testing.T) {
	tests := []struct {
		name   string
		filter WorkerFilter
		want   []int64
	}{
		{
			name:   "default filter keeps everyone under the ceiling in order",
			filter: DefaultWorkerFilter(),
			want:   []int64{1, 2, 3, 4},
		},
		{
			name:   "raised ceiling includes expensive workers",
			filter: WorkerFilter{Skill: AllSkills, MaxRate: 5000},
			want:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:   "skill match",
			filter: WorkerFilter{Skill: "Welder", MaxRate: 5000},
			want:   []int64{1, 5},
		},
		{
			name:   "location is case-insensitive substring",
			filter: WorkerFilter{Skill: AllSkills, Location: "chENNai", MaxRate: 5000},
			want:   []int64{1, 3, 5},
		},
		{
			name:   "rate bound is inclusive",
			filter: WorkerFilter{Skill: AllSkills, MaxRate: 300},
			want:   []int64{1, 2},
		},
		{
			name:   "all predicates combined",
			filter: WorkerFilter{Skill: "Electrician", Location: "chennai", MaxRate: 350},
			want:   []int64{3},
		},
		{
			name:   "no match",
			filter: WorkerFilter{Skill: "Mechanic", MaxRate: 1000},
			want:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterWorkers(sampleWorkers(), tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterWorkers() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterWorkers_DefaultReturnsFullCollection(t *testing.T) {
	workers := sampleWorkers()[:4]
	got := FilterWorkers(workers, WorkerFilter{Skill: AllSkills, Location: "", MaxRate: 1000})
	if !reflect.DeepEqual(got, workers) {
		t.Errorf("expected full collection in original order, got %v", got)
	}
}

func TestFilterWorkers_RateBoundary(t *testing.T) {
	for _, w := range sampleWorkers() {
		in := FilterWorkers([]models.Worker{w}, WorkerFilter{Skill: string(w.Skill), MaxRate: w.Rate})
		if len(in) != 1 {
			t.Errorf("worker %d should match at its own rate", w.ID)
		}
		out := FilterWorkers([]models.Worker{w}, WorkerFilter{Skill: string(w.Skill), MaxRate: w.Rate - 1})
		if len(out) != 0 {
			t.Errorf("worker %d should be excluded below its rate", w.ID)
		}
	}
}

func TestFilterJobs(t *testing.T) {
	jobs := []models.Job{
		{ID: 101, SkillRequired: models.SkillPolisher, Location: "Chennai"},
		{ID: 102, SkillRequired: models.SkillWelder, Location: "Hyderabad"},
		{ID: 103, SkillRequired: models.SkillElectrician, Location: "Bangalore"},
		{ID: 104, SkillRequired: models.SkillCarpenter, Location: "Chennai"},
	}

	tests := []struct {
		name   string
		filter JobFilter
		want   []int64
	}{
		{"default", DefaultJobFilter(), []int64{101, 102, 103, 104}},
		{"empty skill matches all", JobFilter{}, []int64{101, 102, 103, 104}},
		{"skill", JobFilter{Skill: "Welder"}, []int64{102}},
		{"location", JobFilter{Skill: AllSkills, Location: "chennai"}, []int64{101, 104}},
		{"both", JobFilter{Skill: "Carpenter", Location: "Chen"}, []int64{104}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterJobs(jobs, tt.filter)
			gotIDs := make([]int64, 0, len(got))
			for _, j := range got {
				gotIDs = append(gotIDs, j.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("FilterJobs() ids = %v, want %v", gotIDs, tt.want)
			}
		})
	}
}
