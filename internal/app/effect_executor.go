// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/example/workerhub/internal/core/effects"
	"github.com/example/workerhub/internal/ctxutil"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor over a snapshot repository
// and a notifier.
type DefaultEffectExecutor struct {
	snapshots secondary.SnapshotRepository
	notifier  secondary.Notifier
	logger    *slog.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(snapshots secondary.SnapshotRepository, notifier secondary.Notifier, logger *slog.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		snapshots: snapshots,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		return e.executePersist(ctx, typed)
	case effects.ClearEffect:
		e.logger.DebugContext(ctx, "clearing snapshot", "key", typed.Collection, "actor", ctxutil.ActorFromContext(ctx))
		return e.snapshots.Delete(ctx, typed.Collection)
	case effects.NotifyEffect:
		e.notifier.Notify(ctx, typed.Level, typed.Message)
		return nil
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.log(ctx, typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) error {
	payload, err := encodeSnapshot(eff.Collection, eff.Data)
	if err != nil {
		return err
	}

	e.logger.DebugContext(ctx, "saving snapshot",
		"key", eff.Collection,
		"bytes", len(payload),
		"actor", ctxutil.ActorFromContext(ctx),
	)
	return e.snapshots.Save(ctx, eff.Collection, payload)
}

func (e *DefaultEffectExecutor) log(ctx context.Context, eff effects.LogEffect) {
	level := slog.LevelInfo
	switch eff.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	attrs := make([]any, 0, len(eff.Fields)*2)
	for k, v := range eff.Fields {
		attrs = append(attrs, k, v)
	}
	e.logger.Log(ctx, level, eff.Message, attrs...)
}

func encodeSnapshot(collection string, data any) ([]byte, error) {
	if collection == effects.CollectionCurrentUser {
		var sess models.Session
		if data != nil {
			s, ok := data.(models.Session)
			if !ok {
				return nil, fmt.Errorf("invalid session data type: %T", data)
			}
			sess = s
		}
		return models.MarshalSession(sess)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	return payload, nil
}
