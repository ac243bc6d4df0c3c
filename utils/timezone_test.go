package utils

import (
	"testing"
	"time"
)

func TestInstantLocalRoundTrip(t *testing.T) {
	instants := []string{
		"2023-10-01T15:00:00Z",
		"2023-10-01T17:00:00Z",
		"2024-02-29T00:30:00Z",
	}
	zones := []string{"America/New_York", "Asia/Kolkata", "UTC", ""}

	for _, instant := range instants {
		for _, zone := range zones {
			local, err := InstantToLocal(instant, zone)
			if err != nil {
				t.Fatalf("InstantToLocal(%q, %q): %v", instant, zone, err)
			}
			if got := UTCInstant(local); got != instant {
				t.Errorf("round trip via %q: got %q, want %q", zone, got, instant)
			}
		}
	}
}

func TestInstantToLocalRejectsBadInput(t *testing.T) {
	if _, err := InstantToLocal("not-a-time", "UTC"); err == nil {
		t.Error("expected an error for a malformed instant")
	}
	if _, err := InstantToLocal("2023-10-01T15:00:00Z", "Not/AZone"); err == nil {
		t.Error("expected an error for an unknown zone")
	}
}

func TestLocalDateTimeToUTC(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		date      time.Time
		wallClock string
		timezone  string
		want      string
	}{
		{
			name:      "kolkata morning",
			date:      time.Date(2023, 10, 1, 12, 0, 0, 0, kolkata),
			wallClock: "09:00",
			timezone:  "Asia/Kolkata",
			want:      "2023-10-01T03:30:00Z",
		},
		{
			name: "date interpreted in declared zone, not UTC",
			// 23:00 UTC on Sep 30 is already Oct 1 in Kolkata
			date:      time.Date(2023, 9, 30, 23, 0, 0, 0, time.UTC),
			wallClock: "10:00",
			timezone:  "Asia/Kolkata",
			want:      "2023-10-01T04:30:00Z",
		},
		{
			name:      "utc end of day",
			date:      time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
			wallClock: "23:59",
			timezone:  "UTC",
			want:      "2023-10-01T23:59:00Z",
		},
		{
			name:      "blank zone defaults to utc",
			date:      time.Date(2023, 10, 1, 8, 0, 0, 0, time.UTC),
			wallClock: "08:15",
			timezone:  "",
			want:      "2023-10-01T08:15:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalDateTimeToUTC(tt.date.UnixMilli(), tt.wallClock, tt.timezone)
			if err != nil {
				t.Fatalf("LocalDateTimeToUTC: %v", err)
			}
			if UTCInstant(got) != tt.want {
				t.Errorf("got %s, want %s", UTCInstant(got), tt.want)
			}
		})
	}
}

func TestLocalDateTimeToUTCErrors(t *testing.T) {
	millis := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if _, err := LocalDateTimeToUTC(millis, "09:00", "Not/AZone"); err == nil {
		t.Error("expected an error for an unknown zone")
	}
	if _, err := LocalDateTimeToUTC(millis, "9am", "UTC"); err == nil {
		t.Error("expected an error for a malformed wall clock")
	}
}
