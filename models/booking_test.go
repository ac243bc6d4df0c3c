package models

import "testing"

func TestBookingCanTransition(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCanceled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.from}
		err := b.CanTransition(tt.to)
		if tt.allowed && err != nil {
			t.Errorf("transition %s -> %s rejected: %v", tt.from, tt.to, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("transition %s -> %s allowed, want rejection", tt.from, tt.to)
		}
	}
}
