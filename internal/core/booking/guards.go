// Package booking contains the pure business logic for booking operations.
// Guards are pure functions that evaluate preconditions without side effects.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/workerhub/internal/models"
)

// Duration bounds in hours. MaxHours is advisory only.
const (
	MinHours = 2
	MaxHours = 12
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrWrongRole       = errors.New("wrong role")
	ErrMissingField    = errors.New("missing field")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrWorkerNotFound  = errors.New("worker not found")
)

// Input is the employer-supplied part of a booking.
type Input struct {
	Date      string
	StartTime string
	Hours     int
}

// QuoteCost returns the total cost of hiring at rate for hours.
func QuoteCost(rate, hours int) int {
	return rate * hours
}

// ValidateBooking evaluates whether session may book worker with input.
// Rules, in order:
// - a session must be active
// - the session must be an employer
// - date and start time must be present
// - hours must be at least MinHours
func ValidateBooking(session models.Session, worker *models.Worker, input Input) error {
	if session == nil {
		return fmt.Errorf("%w: please login as employer to book", ErrUnauthenticated)
	}
	if session.Type() != models.UserTypeEmployer {
		return fmt.Errorf("%w: only employers can book workers", ErrWrongRole)
	}
	if worker == nil {
		return ErrWorkerNotFound
	}
	if strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.StartTime) == "" {
		return fmt.Errorf("%w: please fill all booking details", ErrMissingField)
	}
	if input.Hours < MinHours {
		return fmt.Errorf("%w: bookings must be at least %d hours (got %d)", ErrInvalidDuration, MinHours, input.Hours)
	}
	return nil
}

// ExceedsAdvisoryMax reports whether hours is above the advisory cap.
func ExceedsAdvisoryMax(hours int) bool {
	return hours > MaxHours
}

// NewBooking validates and builds a Requested booking with a frozen total cost.
func NewBooking(session models.Session, worker *models.Worker, input Input, id int64, now time.Time) (*models.Booking, error) {
	if err := ValidateBooking(session, worker, input); err != nil {
		return nil, err
	}

	return &models.Booking{
		ID:           id,
		WorkerID:     worker.ID,
		WorkerName:   worker.Name,
		EmployerID:   session.ActorID(),
		EmployerName: session.DisplayName(),
		Date:         strings.TrimSpace(input.Date),
		StartTime:    strings.TrimSpace(input.StartTime),
		Hours:        input.Hours,
		TotalCost:    QuoteCost(worker.Rate, input.Hours),
		Status:       models.BookingStatusRequested,
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}, nil
}
