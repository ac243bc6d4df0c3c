package controllers

import (
	"testing"

	"github.com/talenthub/booking-api/models"
)

func filterFixture() ([]models.Booking, []models.User) {
	users := []models.User{
		{ID: 1, FirstName: "Jane", LastName: "Doe"},
		{ID: 2, FirstName: "Mark", LastName: "Lee"},
		{ID: 10, FirstName: "Ana", LastName: "Artist"},
	}
	bookings := []models.Booking{
		{ExpertID: 1, ArtistID: 10},
		{ExpertID: 2, ArtistID: 10},
	}
	return bookings, users
}

func TestFilterBookingsByCounterpartName(t *testing.T) {
	bookings, users := filterFixture()

	tests := []struct {
		name        string
		query       string
		wantExperts []uint
	}{
		{"first name", "jane", []uint{1}},
		{"mixed case with whitespace", "  JaNe  ", []uint{1}},
		{"last name", "lee", []uint{2}},
		{"full name", "jane doe", []uint{1}},
		{"blank keeps all", "   ", []uint{1, 2}},
		{"no match", "zoe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookings(bookings, users, models.RoleArtist, tt.query)
			if len(got) != len(tt.wantExperts) {
				t.Fatalf("kept %d bookings, want %d", len(got), len(tt.wantExperts))
			}
			for i, b := range got {
				if b.ExpertID != tt.wantExperts[i] {
					t.Errorf("booking %d has expert %d, want %d", i, b.ExpertID, tt.wantExperts[i])
				}
			}
		})
	}
}

func TestFilterBookingsExpertViewerMatchesArtists(t *testing.T) {
	bookings, users := filterFixture()

	got := FilterBookings(bookings, users, models.RoleExpert, "ana")
	if len(got) != 2 {
		t.Fatalf("kept %d bookings, want 2 (both belong to artist Ana)", len(got))
	}

	got = FilterBookings(bookings, users, models.RoleExpert, "jane")
	if len(got) != 0 {
		t.Errorf("expert viewer matched an expert name, kept %d bookings", len(got))
	}
}

func TestFilterBookingsUnknownCounterpartDropped(t *testing.T) {
	bookings := []models.Booking{{ExpertID: 99, ArtistID: 10}}
	users := []models.User{{ID: 10, FirstName: "Ana"}}

	if got := FilterBookings(bookings, users, models.RoleArtist, "ana"); len(got) != 0 {
		t.Errorf("booking with unknown counterpart kept: %v", got)
	}
}
