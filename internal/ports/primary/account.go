package primary

import (
	"context"
	"errors"

	"github.com/example/workerhub/internal/models"
)

// ErrAuthRejected marks a registration or login refused by a guard
// (taken email, bad credentials, invalid input).
var ErrAuthRejected = errors.New("rejected")

// RejectedError carries the user-facing reason for a refused registration or login.
// errors.Is(err, ErrAuthRejected) reports true for it.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

func (e *RejectedError) Is(target error) bool { return target == ErrAuthRejected }

// AccountService defines the primary port for client-side account flows:
// credential login and registration against the remote auth service.
type AccountService interface {
	// LoginWithPassword authenticates remotely and starts a session.
	LoginWithPassword(ctx context.Context, email, password string, userType models.UserType) (models.Session, error)

	// RegisterWorker creates a remote worker account, a local worker profile, and a session.
	RegisterWorker(ctx context.Context, req RegisterWorkerRequest) (models.Session, error)

	// RegisterEmployer creates a remote employer account and a session.
	RegisterEmployer(ctx context.Context, req RegisterEmployerRequest) (models.Session, error)
}

// RegisterWorkerRequest contains the worker registration form.
type RegisterWorkerRequest struct {
	Name         string       `validate:"required"`
	Email        string       `validate:"required,email"`
	Password     string       `validate:"required"`
	Phone        string       `validate:"required"`
	Skill        models.Skill `validate:"skill"`
	Experience   int          `validate:"gte=0"`
	Rate         int          `validate:"gt=0"`
	Location     string
	Availability string
}

// RegisterEmployerRequest contains the employer registration form.
type RegisterEmployerRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Company  string `validate:"required"`
	Location string
	Phone    string `validate:"required"`
}

// AuthService defines the primary port for the server side of the auth contract.
type AuthService interface {
	// Register creates an account.
	Register(ctx context.Context, req AuthRegisterRequest) (*models.AuthUser, error)

	// Login verifies credentials.
	Login(ctx context.Context, email, password string) (*models.AuthUser, error)
}

// AuthRegisterRequest is an account registration as received by the server.
type AuthRegisterRequest struct {
	Email    string
	Password string
	Name     string
	Type     string
}
