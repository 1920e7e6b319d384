package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/example/workerhub/internal/core/booking"
	"github.com/example/workerhub/internal/core/catalog"
	"github.com/example/workerhub/internal/core/marketplace"
	"github.com/example/workerhub/internal/core/session"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

// ErrNoSession is returned by session-scoped views when nobody is logged in.
var ErrNoSession = errors.New("not logged in")

// ErrWrongSessionType is returned when the logged-in actor cannot use a view.
var ErrWrongSessionType = errors.New("wrong account type")

// MarketplaceServiceImpl implements the MarketplaceService interface.
// Each mutation runs a pure planner against the current state and commits
// the resulting plan through the record store.
//
// MarketplaceServiceImpl is not safe for concurrent use.
type MarketplaceServiceImpl struct {
	store    *RecordStore
	validate *validator.Validate
	now      func() time.Time
}

var _ primary.MarketplaceService = (*MarketplaceServiceImpl)(nil)

// NewMarketplaceService creates a new MarketplaceService over a loaded store.
func NewMarketplaceService(store *RecordStore) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{
		store:    store,
		validate: newValidator(),
		now:      time.Now,
	}
}

// Login makes the payload the active session.
func (s *MarketplaceServiceImpl) Login(ctx context.Context, req primary.LoginRequest) (models.Session, error) {
	plan, err := marketplace.PlanLogin(s.store.State(), session.Payload{
		ID:       req.ID,
		Name:     req.Name,
		Type:     req.Type,
		Email:    req.Email,
		Company:  req.Company,
		Location: req.Location,
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Commit(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return plan.State.Session, nil
}

// Logout clears the active session.
func (s *MarketplaceServiceImpl) Logout(ctx context.Context) error {
	if err := s.store.Commit(ctx, marketplace.PlanLogout(s.store.State())); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// AddWorker creates a worker profile.
func (s *MarketplaceServiceImpl) AddWorker(ctx context.Context, req primary.AddWorkerRequest) (*models.Worker, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	plan, created := marketplace.PlanAddWorker(s.store.State(), models.Worker{
		Name:         req.Name,
		Skill:        req.Skill,
		Rate:         req.Rate,
		Experience:   req.Experience,
		Availability: req.Availability,
		Location:     req.Location,
		Email:        req.Email,
		Phone:        req.Phone,
	}, s.now())

	if err := s.store.Commit(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save worker: %w", err)
	}
	return &created, nil
}

// UpdateWorker overwrites the given fields of a worker profile.
func (s *MarketplaceServiceImpl) UpdateWorker(ctx context.Context, workerID int64, req primary.UpdateWorkerRequest) (*models.Worker, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	plan, updated, err := marketplace.PlanUpdateWorker(s.store.State(), workerID, req.WorkerUpdate())
	if err != nil {
		return nil, err
	}

	if err := s.store.Commit(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save worker: %w", err)
	}
	return &updated, nil
}

// AddJob posts a job.
func (s *MarketplaceServiceImpl) AddJob(ctx context.Context, req primary.AddJobRequest) (*models.Job, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	plan, created := marketplace.PlanAddJob(s.store.State(), models.Job{
		Title:         req.Title,
		SkillRequired: req.SkillRequired,
		Location:      req.Location,
		Budget:        req.Budget,
		Hours:         req.Hours,
		PostedBy:      req.PostedBy,
	}, s.now())

	if err := s.store.Commit(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return &created, nil
}

// CreateBooking books a worker for the active employer session.
// A rejected booking still emits its error notification before the error is returned.
func (s *MarketplaceServiceImpl) CreateBooking(ctx context.Context, req primary.CreateBookingRequest) (*models.Booking, error) {
	plan, created, planErr := marketplace.PlanCreateBooking(s.store.State(), req.WorkerID, booking.Input{
		Date:      req.Date,
		StartTime: req.StartTime,
		Hours:     req.Hours,
	}, s.now())

	if err := s.store.Commit(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	if planErr != nil {
		return nil, planErr
	}
	return created, nil
}

// CurrentSession returns the active session, or nil.
func (s *MarketplaceServiceImpl) CurrentSession(ctx context.Context) models.Session {
	return s.store.State().Session
}

// ListWorkers returns workers matching the filter.
func (s *MarketplaceServiceImpl) ListWorkers(ctx context.Context, filter catalog.WorkerFilter) []models.Worker {
	return catalog.FilterWorkers(s.store.State().Workers, filter)
}

// GetWorker retrieves a worker by id.
func (s *MarketplaceServiceImpl) GetWorker(ctx context.Context, workerID int64) (*models.Worker, error) {
	w, ok := s.store.State().FindWorker(workerID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", marketplace.ErrWorkerNotFound, workerID)
	}
	return &w, nil
}

// ListJobs returns jobs matching the filter.
func (s *MarketplaceServiceImpl) ListJobs(ctx context.Context, filter catalog.JobFilter) []models.Job {
	return catalog.FilterJobs(s.store.State().Jobs, filter)
}

// ListBookings returns all bookings in creation order.
func (s *MarketplaceServiceImpl) ListBookings(ctx context.Context) []models.Booking {
	bookings := s.store.State().Bookings
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	return out
}

// WorkerDashboard returns the logged-in worker's view.
// The profile comes from the stored worker when one exists, otherwise from the session.
func (s *MarketplaceServiceImpl) WorkerDashboard(ctx context.Context) (*primary.WorkerDashboard, error) {
	state := s.store.State()
	if state.Session == nil {
		return nil, ErrNoSession
	}
	ws, ok := state.Session.(*models.WorkerSession)
	if !ok {
		return nil, fmt.Errorf("%w: the worker dashboard requires a worker account", ErrWrongSessionType)
	}

	worker := ws.Worker
	if stored, found := state.FindWorker(ws.ID); found {
		worker = stored
	}

	return &primary.WorkerDashboard{
		Worker:   worker,
		Bookings: catalog.WorkerBookings(state.Bookings, ws.ID),
	}, nil
}

// EmployerDashboard returns the logged-in employer's view.
func (s *MarketplaceServiceImpl) EmployerDashboard(ctx context.Context) (*primary.EmployerDashboard, error) {
	state := s.store.State()
	if state.Session == nil {
		return nil, ErrNoSession
	}
	es, ok := state.Session.(*models.EmployerSession)
	if !ok {
		return nil, fmt.Errorf("%w: the employer dashboard requires an employer account", ErrWrongSessionType)
	}

	return &primary.EmployerDashboard{
		Employer: *es,
		Jobs:     catalog.EmployerJobs(state.Jobs, catalog.EmployerKey(es)),
		Bookings: catalog.EmployerBookings(state.Bookings, es.ID),
	}, nil
}

// recentBookingLimit is how many bookings the admin view lists.
const recentBookingLimit = 5

// AdminStats returns marketplace-wide totals.
func (s *MarketplaceServiceImpl) AdminStats(ctx context.Context) *primary.AdminStats {
	state := s.store.State()
	return &primary.AdminStats{
		WorkerCount:    len(state.Workers),
		JobCount:       len(state.Jobs),
		BookingCount:   len(state.Bookings),
		TotalRevenue:   catalog.TotalRevenue(state.Bookings),
		SkillCounts:    catalog.SkillCounts(state.Workers),
		RecentBookings: catalog.RecentBookings(state.Bookings, recentBookingLimit),
	}
}
