package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/ports/secondary"
)

// AccountServiceImpl implements the AccountService interface by combining the
// remote auth gateway with the marketplace facade.
type AccountServiceImpl struct {
	gateway     secondary.AuthGateway
	marketplace primary.MarketplaceService
	validate    *validator.Validate
	logger      *slog.Logger
}

var _ primary.AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService with injected dependencies.
func NewAccountService(gateway secondary.AuthGateway, marketplace primary.MarketplaceService, logger *slog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		gateway:     gateway,
		marketplace: marketplace,
		validate:    newValidator(),
		logger:      logger,
	}
}

// LoginWithPassword authenticates remotely and starts a session.
func (s *AccountServiceImpl) LoginWithPassword(ctx context.Context, email, password string, userType models.UserType) (models.Session, error) {
	s.logger.DebugContext(ctx, "login attempt", "email", email, "type", userType)

	resp, err := s.gateway.Login(ctx, email, password, userType)
	if err != nil {
		return nil, err
	}
	user, err := acceptedUser(resp, "Login failed")
	if err != nil {
		return nil, err
	}

	sessionType := user.Type
	if sessionType == "" {
		sessionType = userType
	}

	return s.marketplace.Login(ctx, primary.LoginRequest{
		ID:    user.ID,
		Name:  user.Name,
		Type:  sessionType,
		Email: user.Email,
	})
}

// RegisterWorker creates a remote worker account, a local worker profile, and
// a session for the new profile.
func (s *AccountServiceImpl) RegisterWorker(ctx context.Context, req primary.RegisterWorkerRequest) (models.Session, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	resp, err := s.gateway.Register(ctx, secondary.RegisterUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Type:     models.UserTypeWorker,
	})
	if err != nil {
		return nil, err
	}
	if _, err := acceptedUser(resp, "Registration failed"); err != nil {
		return nil, err
	}

	worker, err := s.marketplace.AddWorker(ctx, primary.AddWorkerRequest{
		Name:         req.Name,
		Skill:        req.Skill,
		Rate:         req.Rate,
		Experience:   req.Experience,
		Availability: req.Availability,
		Location:     req.Location,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create worker profile: %w", err)
	}

	return s.marketplace.Login(ctx, primary.LoginRequest{
		ID:    worker.ID,
		Name:  worker.Name,
		Type:  models.UserTypeWorker,
		Email: worker.Email,
		Phone: worker.Phone,
	})
}

// RegisterEmployer creates a remote employer account and a session.
func (s *AccountServiceImpl) RegisterEmployer(ctx context.Context, req primary.RegisterEmployerRequest) (models.Session, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	resp, err := s.gateway.Register(ctx, secondary.RegisterUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Type:     models.UserTypeEmployer,
	})
	if err != nil {
		return nil, err
	}
	user, err := acceptedUser(resp, "Registration failed")
	if err != nil {
		return nil, err
	}

	return s.marketplace.Login(ctx, primary.LoginRequest{
		ID:       user.ID,
		Name:     req.Name,
		Type:     models.UserTypeEmployer,
		Email:    req.Email,
		Company:  req.Company,
		Location: req.Location,
		Phone:    req.Phone,
	})
}

// acceptedUser extracts the user from a successful response. A missing body,
// success=false, or a missing user is reported as an ErrAuth failure.
func acceptedUser(resp *secondary.AuthResponse, fallback string) (*models.AuthUser, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: %s", secondary.ErrAuth, fallback)
	}
	if !resp.Success || resp.User == nil {
		msg := resp.Message
		if msg == "" {
			msg = fallback
		}
		return nil, fmt.Errorf("%w: %s", secondary.ErrAuth, msg)
	}
	return resp.User, nil
}
