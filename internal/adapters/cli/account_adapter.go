package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

// AccountAdapter is a thin adapter that translates CLI operations to AccountService calls.
type AccountAdapter struct {
	service primary.AccountService
	out     io.Writer
}

// NewAccountAdapter creates a new AccountAdapter with the given service.
func NewAccountAdapter(service primary.AccountService, out io.Writer) *AccountAdapter {
	return &AccountAdapter{
		service: service,
		out:     out,
	}
}

// Login authenticates and prints the resulting session.
func (a *AccountAdapter) Login(ctx context.Context, email, password string, userType models.UserType) (models.Session, error) {
	sess, err := a.service.LoginWithPassword(ctx, email, password, userType)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	a.printSession(sess)
	return sess, nil
}

// RegisterWorker creates a worker account and profile.
func (a *AccountAdapter) RegisterWorker(ctx context.Context, req primary.RegisterWorkerRequest) (models.Session, error) {
	sess, err := a.service.RegisterWorker(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	a.printSession(sess)
	return sess, nil
}

// RegisterEmployer creates an employer account.
func (a *AccountAdapter) RegisterEmployer(ctx context.Context, req primary.RegisterEmployerRequest) (models.Session, error) {
	sess, err := a.service.RegisterEmployer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	a.printSession(sess)
	return sess, nil
}

func (a *AccountAdapter) printSession(sess models.Session) {
	fmt.Fprintf(a.out, "  Account: %s %d\n", sess.Type(), sess.ActorID())
	if ws, ok := sess.(*models.WorkerSession); ok && ws.Skill == models.SkillUnknown {
		fmt.Fprintln(a.out, "  No worker profile found for this account; run 'workerhub workers update' to fill it in.")
	}
}
