package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/example/workerhub/internal/core/effects"
	"github.com/example/workerhub/internal/core/marketplace"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

// RecordStore holds the authoritative marketplace state in memory and makes
// every committed change durable through the effect executor.
//
// RecordStore is not safe for concurrent use.
type RecordStore struct {
	snapshots secondary.SnapshotRepository
	executor  EffectExecutor
	logger    *slog.Logger
	state     marketplace.State
}

// NewRecordStore creates a store holding the seed state. Call Load to restore
// persisted collections.
func NewRecordStore(snapshots secondary.SnapshotRepository, executor EffectExecutor, logger *slog.Logger) *RecordStore {
	return &RecordStore{
		snapshots: snapshots,
		executor:  executor,
		logger:    logger,
		state:     marketplace.SeedState(),
	}
}

// Load restores every collection and the session from their snapshots.
// A missing snapshot leaves the seed value in place; an undecodable one is
// logged and replaced by the seed value.
func (s *RecordStore) Load(ctx context.Context) error {
	state := marketplace.SeedState()

	if err := loadCollection(ctx, s, effects.CollectionWorkers, &state.Workers, marketplace.SeedWorkers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, effects.CollectionJobs, &state.Jobs, marketplace.SeedJobs); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, effects.CollectionBookings, &state.Bookings, func() []models.Booking { return []models.Booking{} }); err != nil {
		return err
	}

	payload, found, err := s.snapshots.Load(ctx, effects.CollectionCurrentUser)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if found {
		sess, err := models.UnmarshalSession(payload)
		if err != nil {
			s.logger.WarnContext(ctx, "discarding unreadable snapshot", "key", effects.CollectionCurrentUser, "error", err)
		} else {
			state.Session = sess
		}
	}

	s.state = state
	return nil
}

// loadCollection decodes the snapshot stored under key into dst.
func loadCollection[T any](ctx context.Context, s *RecordStore, key string, dst *[]T, seed func() []T) error {
	payload, found, err := s.snapshots.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return nil
	}

	var decoded []T
	if err := json.Unmarshal(payload, &decoded); err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable snapshot", "key", key, "error", err)
		*dst = seed()
		return nil
	}
	if decoded == nil {
		decoded = []T{}
	}
	*dst = decoded
	return nil
}

// State returns the current state.
func (s *RecordStore) State() marketplace.State {
	return s.state
}

// Commit executes the plan's effects and, when they all succeed, makes the
// plan's state current.
func (s *RecordStore) Commit(ctx context.Context, plan marketplace.Plan) error {
	if err := s.executor.Execute(ctx, plan.Effects); err != nil {
		return err
	}
	s.state = plan.State
	return nil
}
