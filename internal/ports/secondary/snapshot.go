// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// SnapshotRepository persists whole-collection snapshots under a key.
// Every Save overwrites the previous payload for that key.
type SnapshotRepository interface {
	// Load returns the payload stored under key. found is false when the key
	// has never been saved or was deleted.
	Load(ctx context.Context, key string) (payload []byte, found bool, err error)

	// Save overwrites the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	// Delete removes the payload stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Notifier delivers transient user-facing notifications.
type Notifier interface {
	Notify(ctx context.Context, level, message string)
}
