package marketplace

import (
	"time"

	"github.com/example/workerhub/internal/models"
)

// NextID generates a creation-timestamp identifier.
// The id is the creation time in milliseconds, bumped past currentMax when
// the clock has not advanced, so ids stay unique and increase in creation order.
func NextID(now time.Time, currentMax int64) int64 {
	id := now.UnixMilli()
	if id <= currentMax {
		return currentMax + 1
	}
	return id
}

func maxWorkerID(workers []models.Worker) int64 {
	var m int64
	for _, w := range workers {
		if w.ID > m {
			m = w.ID
		}
	}
	return m
}

func maxJobID(jobs []models.Job) int64 {
	var m int64
	for _, j := range jobs {
		if j.ID > m {
			m = j.ID
		}
	}
	return m
}

func maxBookingID(bookings []models.Booking) int64 {
	var m int64
	for _, b := range bookings {
		if b.ID > m {
			m = b.ID
		}
	}
	return m
}
