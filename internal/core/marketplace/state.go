// Package marketplace contains the application state and the pure planners
// behind every marketplace mutation. This is part of the Functional Core - no I/O.
package marketplace

import (
	"github.com/example/workerhub/internal/core/effects"
	"github.com/example/workerhub/internal/models"
)

// State is an immutable snapshot of all marketplace collections and the
// active session. Planners never modify a State in place; they return a new one.
type State struct {
	Workers  []models.Worker
	Jobs     []models.Job
	Bookings []models.Booking
	Session  models.Session
}

// SeedState returns the state used when nothing has been persisted yet.
func SeedState() State {
	return State{
		Workers:  SeedWorkers(),
		Jobs:     SeedJobs(),
		Bookings: []models.Booking{},
	}
}

// FindWorker returns a copy of the worker with the given id.
func (s State) FindWorker(id int64) (models.Worker, bool) {
	for _, w := range s.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return models.Worker{}, false
}

// Plan is the outcome of a planner: the next state and the effects that
// make it durable and visible.
type Plan struct {
	State   State
	Effects []effects.Effect
}

func persistWorkers(s State) effects.PersistEffect {
	return effects.PersistEffect{Collection: effects.CollectionWorkers, Data: s.Workers}
}

func persistJobs(s State) effects.PersistEffect {
	return effects.PersistEffect{Collection: effects.CollectionJobs, Data: s.Jobs}
}

func persistBookings(s State) effects.PersistEffect {
	return effects.PersistEffect{Collection: effects.CollectionBookings, Data: s.Bookings}
}

func persistSession(s State) effects.PersistEffect {
	return effects.PersistEffect{Collection: effects.CollectionCurrentUser, Data: s.Session}
}

func success(msg string) effects.NotifyEffect {
	return effects.NotifyEffect{Level: models.NotificationSuccess, Message: msg}
}

func failure(msg string) effects.NotifyEffect {
	return effects.NotifyEffect{Level: models.NotificationError, Message: msg}
}
