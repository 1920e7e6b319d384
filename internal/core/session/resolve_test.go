package session

import (
	"errors"
	"testing"

	"github.com/example/workerhub/internal/models"
)

var ravi = models.Worker{
	ID: 1, Name: "Ravi Kumar", Skill: models.SkillWelder, Rate: 300, Experience: 4,
	Availability: "9am-6pm", Location: "Chennai", Rating: 4.6, Status: models.WorkerStatusOnline,
}

func TestResolve_ExistingWorker(t *testing.T) {
	s, err := Resolve([]models.Worker{ravi}, Payload{ID: 1, Name: "ravi", Type: models.UserTypeWorker})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	ws, ok := s.(*models.WorkerSession)
	if !ok {
		t.Fatalf("expected *WorkerSession, got %T", s)
	}
	if ws.Worker != ravi {
		t.Errorf("session worker = %+v, want stored record %+v", ws.Worker, ravi)
	}
	if s.Type() != models.UserTypeWorker {
		t.Errorf("Type() = %s, want worker", s.Type())
	}
}

func TestResolve_MissingWorkerUsesPlaceholder(t *testing.T) {
	s, err := Resolve([]models.Worker{ravi}, Payload{ID: 99, Name: "New Person", Type: models.UserTypeWorker, Email: "new@example.com"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	ws := s.(*models.WorkerSession)
	if ws.ID != 99 || ws.Name != "New Person" || ws.Email != "new@example.com" {
		t.Errorf("payload not merged: %+v", ws.Worker)
	}
	if ws.Skill != models.SkillUnknown || ws.Rate != 0 || ws.Experience != 0 {
		t.Errorf("placeholder defaults wrong: %+v", ws.Worker)
	}
	if ws.Location != "Unknown" || ws.Status != models.WorkerStatusOnline {
		t.Errorf("placeholder location/status wrong: %+v", ws.Worker)
	}
}

func TestResolve_Employer(t *testing.T) {
	p := Payload{ID: 7, Name: "Asha", Type: models.UserTypeEmployer, Company: "ABC Industries", Location: "Chennai", Phone: "555"}

	s, err := Resolve(nil, p)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	es, ok := s.(*models.EmployerSession)
	if !ok {
		t.Fatalf("expected *EmployerSession, got %T", s)
	}
	if es.ID != 7 || es.Company != "ABC Industries" || es.Phone != "555" {
		t.Errorf("employer session = %+v", es)
	}
}

func TestResolve_EmployerIgnoresWorkerRecords(t *testing.T) {
	s, err := Resolve([]models.Worker{ravi}, Payload{ID: 1, Name: "Same Id", Type: models.UserTypeEmployer})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if s.DisplayName() != "Same Id" {
		t.Errorf("employer must not be merged with worker record, got %s", s.DisplayName())
	}
}

func TestResolve_UnknownType(t *testing.T) {
	_, err := Resolve(nil, Payload{ID: 1, Type: "admin"})
	if !errors.Is(err, models.ErrUnknownUserType) {
		t.Errorf("expected ErrUnknownUserType, got %v", err)
	}
}
