package secondary

import (
	"context"
	"errors"

	"github.com/example/workerhub/internal/models"
)

// ErrAuth marks every failure reported by an AuthGateway.
var ErrAuth = errors.New("authentication failed")

// ErrEmailTaken is returned by AuthUserRepository.Create when the email is already stored.
var ErrEmailTaken = errors.New("email already registered")

// AuthGateway is the client side of the remote authentication service.
type AuthGateway interface {
	// Login sends credentials. userType may be empty.
	Login(ctx context.Context, email, password string, userType models.UserType) (*AuthResponse, error)

	// Register creates a remote account.
	Register(ctx context.Context, req RegisterUserRequest) (*AuthResponse, error)
}

// RegisterUserRequest is the body of a registration call.
type RegisterUserRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Type     models.UserType `json:"type"`
}

// AuthResponse is the decoded response body. A nil *AuthResponse with a nil
// error means the server answered 2xx with an empty body.
type AuthResponse struct {
	Success bool             `json:"success"`
	User    *models.AuthUser `json:"user,omitempty"`
	Message string           `json:"message,omitempty"`
}

// AuthUserRepository defines the secondary port for stored accounts.
type AuthUserRepository interface {
	// Create persists a new account and returns its assigned id.
	// Returns ErrEmailTaken when the email is already stored.
	Create(ctx context.Context, user *AuthUserRecord) (int64, error)

	// GetByEmail retrieves an account by normalized email. Returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*AuthUserRecord, error)

	// EmailExists checks if an account already uses the email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthUserRecord represents an account as stored in persistence.
type AuthUserRecord struct {
	ID           int64
	Email        string
	PasswordHash string
	Type         string
	Name         string
}
