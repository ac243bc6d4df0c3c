package utils

import (
	"time"

	"github.com/talenthub/booking-api/db"
	"github.com/talenthub/booking-api/models"
)

// CheckBookingConflict reports whether the expert is free for the given
// window. Candidate rows are locked so two concurrent booking attempts for
// the same expert cannot both pass the check.
func CheckBookingConflict(expertID uint, startTime time.Time, duration time.Duration) (bool, error) {
	endTime := startTime.Add(duration)

	var existing models.Booking
	err := db.DB.Raw(`
		SELECT *
		FROM bookings
		WHERE expert_id = ? AND status IN ('pending', 'confirmed') AND (
			(start_time < ? AND end_time > ?) OR
			(start_time >= ? AND start_time < ?)
		) FOR UPDATE
		LIMIT 1
	`, expertID, endTime, startTime, startTime, endTime).
		Scan(&existing).Error

	return evaluateConflict(existing.ID, err)
}

// evaluateConflict maps the raw-query outcome to the caller's contract. A
// query failure is reported as an error, never as a free slot; any
// overlapping pending or confirmed booking blocks the slot.
func evaluateConflict(existingID uint, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return existingID == 0, nil
}
