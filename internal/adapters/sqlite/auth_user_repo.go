package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/example/workerhub/internal/ports/secondary"
)

// AuthUserRepository implements secondary.AuthUserRepository with SQLite.
type AuthUserRepository struct {
	db *sql.DB
}

var _ secondary.AuthUserRepository = (*AuthUserRepository)(nil)

// NewAuthUserRepository creates a new SQLite account repository.
func NewAuthUserRepository(db *sql.DB) *AuthUserRepository {
	return &AuthUserRepository{db: db}
}

// Create persists a new account and returns its assigned id.
func (r *AuthUserRepository) Create(ctx context.Context, user *secondary.AuthUserRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO login (email, password, type, name) VALUES (?, ?, ?, ?)",
		user.Email, user.PasswordHash, user.Type, user.Name,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return 0, fmt.Errorf("%w: %s", secondary.ErrEmailTaken, user.Email)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read account id: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves an account by email.
func (r *AuthUserRepository) GetByEmail(ctx context.Context, email string) (*secondary.AuthUserRecord, error) {
	record := &secondary.AuthUserRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password, type, name FROM login WHERE email = ?",
		email,
	).Scan(&record.ID, &record.Email, &record.PasswordHash, &record.Type, &record.Name)

	if err == sql.ErrNoRows {
		return nil, nil // Return nil, nil for "not found" to distinguish from errors
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return record, nil
}

// EmailExists checks if an account already uses the email.
func (r *AuthUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM login WHERE email = ?", email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}
