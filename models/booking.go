package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Booking is a confirmed-or-pending appointment between an artist and an
// expert for one of the expert's services.
type Booking struct {
	gorm.Model
	Title     string        `json:"title"`
	Notes     string        `json:"notes"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Status    BookingStatus `json:"status"`
	ServiceID uint          `json:"service_id"`
	Service   Service       `json:"service" gorm:"foreignKey:ServiceID"`
	ExpertID  uint          `json:"expert_id"`
	Expert    User          `json:"expert" gorm:"foreignKey:ExpertID"`
	ArtistID  uint          `json:"artist_id"`
	Artist    User          `json:"artist" gorm:"foreignKey:ArtistID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether a booking may move from its current status
// to next. Pending bookings can be confirmed or canceled, confirmed ones
// completed or canceled; completed and canceled are terminal.
func (b *Booking) CanTransition(next BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if next != StatusConfirmed && next != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusConfirmed:
		if next != StatusCompleted && next != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", next)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	default:
		return fmt.Errorf("unknown booking status %s", b.Status)
	}
	return nil
}

// UpdateStatus applies a guarded status transition and persists it.
func (b *Booking) UpdateStatus(tx *gorm.DB, next BookingStatus) error {
	if err := b.CanTransition(next); err != nil {
		return err
	}
	b.Status = next
	return tx.Save(b).Error
}
