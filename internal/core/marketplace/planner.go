package marketplace

import (
	"errors"
	"fmt"
	"time"

	"github.com/example/workerhub/internal/core/booking"
	"github.com/example/workerhub/internal/core/effects"
	"github.com/example/workerhub/internal/core/session"
	"github.com/example/workerhub/internal/models"
)

// ErrWorkerNotFound is returned when a worker id has no record.
var ErrWorkerNotFound = booking.ErrWorkerNotFound

// Notification messages
const (
	MsgLoggedOut      = "Logged out successfully"
	MsgWorkerCreated  = "Worker profile created successfully!"
	MsgProfileUpdated = "Profile updated successfully!"
	MsgJobPosted      = "Job posted successfully!"
	MsgBookingSent    = "Booking request sent!"
)

// WelcomeMessage is the notification shown after login.
func WelcomeMessage(name string) string {
	return fmt.Sprintf("Welcome %s!", name)
}

// WorkerUpdate holds the fields to overwrite on a worker. Nil fields are kept.
type WorkerUpdate struct {
	Name         *string
	Skill        *models.Skill
	Rate         *int
	Experience   *int
	Availability *string
	Location     *string
	Status       *string
	Phone        *string
}

// IsEmpty reports whether the update changes nothing.
func (u WorkerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Skill == nil && u.Rate == nil && u.Experience == nil &&
		u.Availability == nil && u.Location == nil && u.Status == nil && u.Phone == nil
}

// Apply returns w with the present fields overwritten.
func (u WorkerUpdate) Apply(w models.Worker) models.Worker {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Skill != nil {
		w.Skill = *u.Skill
	}
	if u.Rate != nil {
		w.Rate = *u.Rate
	}
	if u.Experience != nil {
		w.Experience = *u.Experience
	}
	if u.Availability != nil {
		w.Availability = *u.Availability
	}
	if u.Location != nil {
		w.Location = *u.Location
	}
	if u.Status != nil {
		w.Status = *u.Status
	}
	if u.Phone != nil {
		w.Phone = *u.Phone
	}
	return w
}

// PlanLogin resolves the payload into a session and persists it.
func PlanLogin(s State, p session.Payload) (Plan, error) {
	sess, err := session.Resolve(s.Workers, p)
	if err != nil {
		return Plan{State: s}, err
	}

	next := s
	next.Session = sess

	return Plan{
		State: next,
		Effects: []effects.Effect{
			persistSession(next),
			success(WelcomeMessage(p.Name)),
		},
	}, nil
}

// PlanLogout clears the session and its snapshot.
func PlanLogout(s State) Plan {
	next := s
	next.Session = nil

	return Plan{
		State: next,
		Effects: []effects.Effect{
			effects.ClearEffect{Collection: effects.CollectionCurrentUser},
			success(MsgLoggedOut),
		},
	}
}

// PlanAddWorker appends w with a fresh id, zero rating and online status.
func PlanAddWorker(s State, w models.Worker, now time.Time) (Plan, models.Worker) {
	w.ID = NextID(now, maxWorkerID(s.Workers))
	w.Rating = 0
	w.Status = models.WorkerStatusOnline

	next := s
	next.Workers = appendWorker(s.Workers, w)

	return Plan{
		State: next,
		Effects: []effects.Effect{
			persistWorkers(next),
			success(MsgWorkerCreated),
		},
	}, w
}

// PlanUpdateWorker overwrites the present fields of the worker with id.
// When the active session is that worker, the session is refreshed as well.
func PlanUpdateWorker(s State, id int64, u WorkerUpdate) (Plan, models.Worker, error) {
	idx := -1
	for i, w := range s.Workers {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Plan{State: s}, models.Worker{}, fmt.Errorf("%w: %d", ErrWorkerNotFound, id)
	}

	updated := u.Apply(s.Workers[idx])

	next := s
	next.Workers = make([]models.Worker, len(s.Workers))
	copy(next.Workers, s.Workers)
	next.Workers[idx] = updated

	effs := []effects.Effect{persistWorkers(next)}

	if ws, ok := s.Session.(*models.WorkerSession); ok && ws.ID == id {
		next.Session = &models.WorkerSession{Worker: updated}
		effs = append(effs, persistSession(next))
	}
	effs = append(effs, success(MsgProfileUpdated))

	return Plan{State: next, Effects: effs}, updated, nil
}

// PlanAddJob appends j with a fresh id and Open status.
func PlanAddJob(s State, j models.Job, now time.Time) (Plan, models.Job) {
	j.ID = NextID(now, maxJobID(s.Jobs))
	j.Status = models.JobStatusOpen

	next := s
	next.Jobs = make([]models.Job, len(s.Jobs), len(s.Jobs)+1)
	copy(next.Jobs, s.Jobs)
	next.Jobs = append(next.Jobs, j)

	return Plan{
		State: next,
		Effects: []effects.Effect{
			persistJobs(next),
			success(MsgJobPosted),
		},
	}, j
}

// PlanCreateBooking validates the booking against the active session and
// appends it. On failure the state is unchanged and the plan carries only an
// error notification.
func PlanCreateBooking(s State, workerID int64, input booking.Input, now time.Time) (Plan, *models.Booking, error) {
	var worker *models.Worker
	if w, ok := s.FindWorker(workerID); ok {
		worker = &w
	}

	b, err := booking.NewBooking(s.Session, worker, input, NextID(now, maxBookingID(s.Bookings)), now)
	if err != nil {
		return Plan{
			State:   s,
			Effects: []effects.Effect{failure(bookingFailureMessage(err))},
		}, nil, err
	}

	next := s
	next.Bookings = make([]models.Booking, len(s.Bookings), len(s.Bookings)+1)
	copy(next.Bookings, s.Bookings)
	next.Bookings = append(next.Bookings, *b)

	return Plan{
		State: next,
		Effects: []effects.Effect{
			persistBookings(next),
			success(MsgBookingSent),
		},
	}, b, nil
}

func bookingFailureMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		return "Please login as employer to book"
	case errors.Is(err, booking.ErrWrongRole):
		return "Only employers can book workers"
	case errors.Is(err, booking.ErrMissingField):
		return "Please fill all booking details"
	case errors.Is(err, booking.ErrInvalidDuration):
		return fmt.Sprintf("Bookings must be at least %d hours", booking.MinHours)
	case errors.Is(err, booking.ErrWorkerNotFound):
		return "Worker not found"
	default:
		return err.Error()
	}
}

func appendWorker(workers []models.Worker, w models.Worker) []models.Worker {
	out := make([]models.Worker, len(workers), len(workers)+1)
	copy(out, workers)
	return append(out, w)
}
