// Package auth contains the pure business logic for account registration and login.
// Guards are pure functions that evaluate preconditions without side effects.
package auth

import (
	"fmt"
	"strings"

	"github.com/example/workerhub/internal/models"
)

// Failure messages returned to clients.
const (
	MsgEmailTaken         = "Email already registered"
	MsgInvalidCredentials = "Invalid email or password"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RegisterContext provides context for registration guards.
type RegisterContext struct {
	Email      string
	Password   string
	Name       string
	Type       string
	EmailTaken bool
}

// LoginContext provides context for login guards.
type LoginContext struct {
	UserExists    bool
	PasswordMatch bool
}

// CanRegister evaluates whether an account can be registered.
// Rules:
// - email, password and name are required
// - type must be worker or employer
// - email must not already be registered
func CanRegister(ctx RegisterContext) GuardResult {
	if strings.TrimSpace(ctx.Email) == "" || ctx.Password == "" || strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "email, password and name are required"}
	}

	if _, err := models.ParseUserType(ctx.Type); err != nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("type must be %q or %q (got %q)", models.UserTypeWorker, models.UserTypeEmployer, ctx.Type),
		}
	}

	if ctx.EmailTaken {
		return GuardResult{Allowed: false, Reason: MsgEmailTaken}
	}

	return GuardResult{Allowed: true}
}

// CanLogin evaluates whether presented credentials are accepted.
// Unknown email and wrong password yield the same reason.
func CanLogin(ctx LoginContext) GuardResult {
	if !ctx.UserExists || !ctx.PasswordMatch {
		return GuardResult{Allowed: false, Reason: MsgInvalidCredentials}
	}
	return GuardResult{Allowed: true}
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
