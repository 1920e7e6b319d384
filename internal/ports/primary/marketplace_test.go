package primary

import (
	"testing"

	"github.com/example/workerhub/internal/models"
)

func TestUpdateWorkerRequest_WorkerUpdate(t *testing.T) {
	if !(UpdateWorkerRequest{}).WorkerUpdate().IsEmpty() {
		t.Error("empty request must convert to an empty update")
	}

	name, availability, location, status, phone := "Ravi K.", "8am-4pm", "Madurai", models.WorkerStatusOffline, "9000000002"
	skill := models.SkillFabricator
	rate, experience := 450, 9
	req := UpdateWorkerRequest{
		Name:         &name,
		Skill:        &skill,
		Rate:         &rate,
		Experience:   &experience,
		Availability: &availability,
		Location:     &location,
		Status:       &status,
		Phone:        &phone,
	}

	got := req.WorkerUpdate().Apply(models.Worker{ID: 1, Rating: 4.6})
	want := models.Worker{
		ID:           1,
		Name:         name,
		Skill:        skill,
		Rate:         rate,
		Experience:   experience,
		Availability: availability,
		Location:     location,
		Rating:       4.6,
		Status:       status,
		Phone:        phone,
	}
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}

	for _, single := range []UpdateWorkerRequest{{Name: &name}, {Phone: &phone}, {Experience: &experience}} {
		if single.WorkerUpdate().IsEmpty() {
			t.Errorf("request %+v must not convert to an empty update", single)
		}
	}
}
