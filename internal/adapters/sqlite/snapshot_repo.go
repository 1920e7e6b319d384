// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/workerhub/internal/ports/secondary"
)

// SnapshotRepository implements secondary.SnapshotRepository with SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

var _ secondary.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SQLite snapshot repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load retrieves the payload stored under key.
func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE key = ?",
		key,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return []byte(payload), true, nil
}

// Save overwrites the payload stored under key.
func (r *SnapshotRepository) Save(ctx context.Context, key string, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

// Delete removes the payload stored under key.
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}

	return nil
}
