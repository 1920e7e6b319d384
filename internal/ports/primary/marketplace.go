package primary

import (
	"context"

	"github.com/example/workerhub/internal/core/catalog"
	"github.com/example/workerhub/internal/core/marketplace"
	"github.com/example/workerhub/internal/models"
)

// MarketplaceService defines the primary port for the marketplace facade.
// It is the single mutation surface over workers, jobs, bookings and the session.
type MarketplaceService interface {
	// Login makes the payload the active session.
	Login(ctx context.Context, req LoginRequest) (models.Session, error)

	// Logout clears the active session.
	Logout(ctx context.Context) error

	// AddWorker creates a worker profile.
	AddWorker(ctx context.Context, req AddWorkerRequest) (*models.Worker, error)

	// UpdateWorker overwrites the given fields of a worker profile.
	UpdateWorker(ctx context.Context, workerID int64, req UpdateWorkerRequest) (*models.Worker, error)

	// AddJob posts a job.
	AddJob(ctx context.Context, req AddJobRequest) (*models.Job, error)

	// CreateBooking books a worker for the active employer session.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)

	// CurrentSession returns the active session, or nil.
	CurrentSession(ctx context.Context) models.Session

	// ListWorkers returns workers matching the filter.
	ListWorkers(ctx context.Context, filter catalog.WorkerFilter) []models.Worker

	// GetWorker retrieves a worker by id.
	GetWorker(ctx context.Context, workerID int64) (*models.Worker, error)

	// ListJobs returns jobs matching the filter.
	ListJobs(ctx context.Context, filter catalog.JobFilter) []models.Job

	// ListBookings returns all bookings in creation order.
	ListBookings(ctx context.Context) []models.Booking

	// WorkerDashboard returns the logged-in worker's view.
	WorkerDashboard(ctx context.Context) (*WorkerDashboard, error)

	// EmployerDashboard returns the logged-in employer's view.
	EmployerDashboard(ctx context.Context) (*EmployerDashboard, error)

	// AdminStats returns marketplace-wide totals.
	AdminStats(ctx context.Context) *AdminStats
}

// LoginRequest contains the user data a session is built from.
type LoginRequest struct {
	ID       int64
	Name     string
	Type     models.UserType
	Email    string
	Company  string
	Location string
	Phone    string
}

// AddWorkerRequest contains parameters for creating a worker.
type AddWorkerRequest struct {
	Name         string       `validate:"required"`
	Skill        models.Skill `validate:"skill"`
	Rate         int          `validate:"gt=0"`
	Experience   int          `validate:"gte=0"`
	Availability string
	Location     string
	Email        string `validate:"omitempty,email"`
	Phone        string
}

// UpdateWorkerRequest contains the worker fields to overwrite. Nil fields are kept.
type UpdateWorkerRequest struct {
	Name         *string       `validate:"omitempty,min=1"`
	Skill        *models.Skill `validate:"omitempty,skill"`
	Rate         *int          `validate:"omitempty,gt=0"`
	Experience   *int          `validate:"omitempty,gte=0"`
	Availability *string
	Location     *string
	Status       *string `validate:"omitempty,oneof=online offline"`
	Phone        *string
}

// WorkerUpdate converts the request to the core update it describes.
func (r UpdateWorkerRequest) WorkerUpdate() marketplace.WorkerUpdate {
	return marketplace.WorkerUpdate{
		Name:         r.Name,
		Skill:        r.Skill,
		Rate:         r.Rate,
		Experience:   r.Experience,
		Availability: r.Availability,
		Location:     r.Location,
		Status:       r.Status,
		Phone:        r.Phone,
	}
}

// AddJobRequest contains parameters for posting a job.
type AddJobRequest struct {
	Title         string       `validate:"required"`
	SkillRequired models.Skill `validate:"skill"`
	Location      string
	Budget        int    `validate:"gt=0"`
	Hours         int    `validate:"gt=0"`
	PostedBy      string `validate:"required"`
}

// CreateBookingRequest contains parameters for booking a worker.
type CreateBookingRequest struct {
	WorkerID  int64
	Date      string
	StartTime string
	Hours     int
}

// WorkerDashboard is the logged-in worker's profile and incoming bookings.
type WorkerDashboard struct {
	Worker   models.Worker
	Bookings []models.Booking
}

// EmployerDashboard is the logged-in employer's posted jobs and bookings.
type EmployerDashboard struct {
	Employer models.EmployerSession
	Jobs     []models.Job
	Bookings []models.Booking
}

// AdminStats holds marketplace-wide totals.
type AdminStats struct {
	WorkerCount    int
	JobCount       int
	BookingCount   int
	TotalRevenue   int
	SkillCounts    []catalog.SkillCount
	RecentBookings []models.Booking
}
