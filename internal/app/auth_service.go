package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	coreauth "github.com/example/workerhub/internal/core/auth"
	"github.com/example/workerhub/internal/ctxutil"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/ports/secondary"
)

// AuthServiceImpl implements the AuthService interface backing the
// development auth server.
type AuthServiceImpl struct {
	users    secondary.AuthUserRepository
	logger   *slog.Logger
	hashCost int
}

var _ primary.AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(users secondary.AuthUserRepository, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:    users,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthServiceImpl) Register(ctx context.Context, req primary.AuthRegisterRequest) (*models.AuthUser, error) {
	email := coreauth.NormalizeEmail(req.Email)
	s.logger.InfoContext(ctx, "register attempt", "email", email, "type", req.Type, "request_id", ctxutil.RequestIDFromContext(ctx))

	taken := false
	if email != "" {
		var err error
		taken, err = s.users.EmailExists(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	// Guard check
	guardCtx := coreauth.RegisterContext{
		Email:      email,
		Password:   req.Password,
		Name:       req.Name,
		Type:       req.Type,
		EmailTaken: taken,
	}
	if result := coreauth.CanRegister(guardCtx); !result.Allowed {
		s.logger.WarnContext(ctx, "register rejected", "email", email, "reason", result.Reason)
		return nil, &primary.RejectedError{Reason: result.Reason}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.Create(ctx, &secondary.AuthUserRecord{
		Email:        email,
		PasswordHash: string(hash),
		Type:         req.Type,
		Name:         req.Name,
	})
	if errors.Is(err, secondary.ErrEmailTaken) {
		// Lost a race with a concurrent registration for the same email.
		return nil, &primary.RejectedError{Reason: coreauth.MsgEmailTaken}
	}
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "account registered", "id", id, "email", email)
	return &models.AuthUser{ID: id, Email: email, Name: req.Name, Type: models.UserType(req.Type)}, nil
}

// Login verifies credentials.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	email = coreauth.NormalizeEmail(email)
	s.logger.InfoContext(ctx, "login attempt", "email", email, "request_id", ctxutil.RequestIDFromContext(ctx))

	record, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	guardCtx := coreauth.LoginContext{UserExists: record != nil}
	if record != nil {
		guardCtx.PasswordMatch = bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) == nil
	}
	if result := coreauth.CanLogin(guardCtx); !result.Allowed {
		s.logger.WarnContext(ctx, "login rejected", "email", email)
		return nil, &primary.RejectedError{Reason: result.Reason}
	}

	return &models.AuthUser{
		ID:    record.ID,
		Email: record.Email,
		Name:  record.Name,
		Type:  models.UserType(record.Type),
	}, nil
}

// HashPassword hashes a password with the service's bcrypt cost.
func (s *AuthServiceImpl) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
