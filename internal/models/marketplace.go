// Package models holds the marketplace entities shared by every layer.
// JSON field names are the persisted snapshot layout.
package models

import "strings"

// Skill classifies both worker capability and job requirement.
type Skill string

const (
	SkillWelder          Skill = "Welder"
	SkillPolisher        Skill = "Polisher"
	SkillElectrician     Skill = "Electrician"
	SkillPlumber         Skill = "Plumber"
	SkillCarpenter       Skill = "Carpenter"
	SkillPainter         Skill = "Painter"
	SkillFabricator      Skill = "Fabricator"
	SkillMachineOperator Skill = "Machine Operator"
	SkillMechanic        Skill = "Mechanic"

	// SkillUnknown is only carried by placeholder workers built at login.
	SkillUnknown Skill = "Unknown"
)

var skills = []Skill{
	SkillWelder,
	SkillPolisher,
	SkillElectrician,
	SkillPlumber,
	SkillCarpenter,
	SkillPainter,
	SkillFabricator,
	SkillMachineOperator,
	SkillMechanic,
}

// Skills returns the enumerated skill set in display order.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// ParseSkill matches s against the enumerated skill set, ignoring case.
func ParseSkill(s string) (Skill, bool) {
	for _, sk := range skills {
		if strings.EqualFold(string(sk), strings.TrimSpace(s)) {
			return sk, true
		}
	}
	return "", false
}

// IsValid reports whether the skill belongs to the enumerated set.
func (s Skill) IsValid() bool {
	for _, sk := range skills {
		if s == sk {
			return true
		}
	}
	return false
}

// Worker availability status
const (
	WorkerStatusOnline  = "online"
	WorkerStatusOffline = "offline"
)

// Worker is a skilled worker offering hourly labour.
type Worker struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Skill        Skill   `json:"skill"`
	Rate         int     `json:"rate"`
	Experience   int     `json:"experience"`
	Availability string  `json:"availability"`
	Location     string  `json:"location"`
	Rating       float64 `json:"rating"`
	Status       string  `json:"status"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
}

// JobStatusOpen is the only job status produced.
const JobStatusOpen = "Open"

// Job is an employer's posted job.
// PostedBy holds the employer's company name and is not enforced as a reference.
type Job struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	SkillRequired Skill  `json:"skillRequired"`
	Location      string `json:"location"`
	Budget        int    `json:"budget"`
	Hours         int    `json:"hours"`
	Status        string `json:"status"`
	PostedBy      string `json:"postedBy"`
}

// Booking statuses. Only BookingStatusRequested is ever produced; the
// others are rendered when present in persisted data.
const (
	BookingStatusRequested = "Requested"
	BookingStatusAccepted  = "Accepted"
	BookingStatusDeclined  = "Declined"
	BookingStatusCompleted = "Completed"
)

// Booking is an employer's request to hire a worker for a number of hours.
// TotalCost is frozen at creation.
type Booking struct {
	ID           int64  `json:"id"`
	WorkerID     int64  `json:"workerId"`
	WorkerName   string `json:"workerName"`
	EmployerID   int64  `json:"employerId"`
	EmployerName string `json:"employerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	Hours        int    `json:"hours"`
	TotalCost    int    `json:"totalCost"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// AuthUser is the user descriptor returned by the authentication service.
type AuthUser struct {
	ID    int64    `json:"id"`
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name"`
	Type  UserType `json:"type"`
}

// Notification levels
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
