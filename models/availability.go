package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is a wall-clock time-of-day range, both ends in 24h "HH:MM"
// format. End may be the sentinel "24:00" meaning end of day.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EndOfDay is the sentinel end time for a slot that runs to midnight.
const EndOfDay = "24:00"

// MinuteOfDay parses an "HH:MM" string into minutes since midnight.
// The sentinel "24:00" maps to 1440.
func MinuteOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	if s == EndOfDay {
		return 24 * 60, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// IsValidTimeRange reports whether start/end form a usable same-day range.
// An end of "24:00" is always valid; otherwise end must be strictly after
// start. Malformed input is invalid.
func IsValidTimeRange(start, end string) bool {
	startMin, err := MinuteOfDay(start)
	if err != nil {
		return false
	}
	if end == EndOfDay {
		return true
	}
	endMin, err := MinuteOfDay(end)
	if err != nil {
		return false
	}
	return endMin > startMin
}

// ExpandHourlySlots lists every whole-hour boundary from the slot's start
// through its end inclusive, stepping 60 minutes. These are the bookable
// appointment start times within the slot. Empty when end precedes start.
func ExpandHourlySlots(slot TimeSlot) []string {
	startMin, err := MinuteOfDay(slot.Start)
	if err != nil {
		return nil
	}
	endMin, err := MinuteOfDay(slot.End)
	if err != nil {
		return nil
	}
	var hours []string
	for m := startMin; m <= endMin; m += 60 {
		hours = append(hours, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return hours
}

// DateSlot is an absolute range: both endpoints are ISO-8601 UTC instants.
type DateSlot struct {
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
}

// Bounds parses both endpoints as UTC instants.
func (d DateSlot) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, d.StartDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start instant %q: %v", d.StartDateTime, err)
	}
	end, err := time.Parse(time.RFC3339, d.EndDateTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end instant %q: %v", d.EndDateTime, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("date slot ends before it starts")
	}
	return start.UTC(), end.UTC(), nil
}

// DaysOfMonth is a recurring day set within one calendar month, e.g. weekly
// availability expressed as explicit day numbers.
type DaysOfMonth struct {
	Month int   `json:"month"`
	Year  int   `json:"year"`
	Days  []int `json:"days"`
}

// Validate checks month range, year plausibility and that every day number
// exists in the given month (leap years included).
func (d DaysOfMonth) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d out of range", d.Month)
	}
	if d.Year < 1000 || d.Year > 9999 {
		return fmt.Errorf("year %d out of range", d.Year)
	}
	last := daysInMonth(d.Month, d.Year)
	for _, day := range d.Days {
		if day < 1 || day > last {
			return fmt.Errorf("day %d does not exist in %d-%02d", day, d.Year, d.Month)
		}
	}
	return nil
}

func daysInMonth(month, year int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalendarKeyKind tags the two calendar-key shapes.
type CalendarKeyKind string

const (
	KeyDaysOfMonth CalendarKeyKind = "days_of_month"
	KeyDateSlot    CalendarKeyKind = "date_slot"
)

// CalendarKey decides which calendar dates a time slot applies to. It is
// either a recurring in-month day set or an absolute UTC range.
type CalendarKey struct {
	Kind        CalendarKeyKind `json:"kind"`
	DaysOfMonth *DaysOfMonth    `json:"days_of_month,omitempty"`
	DateSlot    *DateSlot       `json:"date_slot,omitempty"`
}

func (k CalendarKey) Validate() error {
	switch k.Kind {
	case KeyDaysOfMonth:
		if k.DaysOfMonth == nil {
			return fmt.Errorf("days_of_month key carries no day set")
		}
		return k.DaysOfMonth.Validate()
	case KeyDateSlot:
		if k.DateSlot == nil {
			return fmt.Errorf("date_slot key carries no range")
		}
		_, _, err := k.DateSlot.Bounds()
		return err
	default:
		return fmt.Errorf("unknown calendar key kind %q", k.Kind)
	}
}

// Covers reports whether the key applies to the given calendar date,
// interpreted in loc. Absolute ranges are compared by the local calendar
// dates of their UTC endpoints.
func (k CalendarKey) Covers(day, month, year int, loc *time.Location) bool {
	switch k.Kind {
	case KeyDaysOfMonth:
		if k.DaysOfMonth == nil || k.DaysOfMonth.Month != month || k.DaysOfMonth.Year != year {
			return false
		}
		for _, d := range k.DaysOfMonth.Days {
			if d == day {
				return true
			}
		}
		return false
	case KeyDateSlot:
		if k.DateSlot == nil {
			return false
		}
		start, end, err := k.DateSlot.Bounds()
		if err != nil {
			return false
		}
		target := ordinalDate(year, time.Month(month), day)
		return target >= ordinalOf(start.In(loc)) && target <= ordinalOf(end.In(loc))
	default:
		return false
	}
}

// coveredDates materializes the key's local calendar dates for overlap
// detection at insertion time.
func (k CalendarKey) coveredDates(loc *time.Location) map[int]struct{} {
	dates := make(map[int]struct{})
	switch k.Kind {
	case KeyDaysOfMonth:
		if k.DaysOfMonth == nil {
			return dates
		}
		for _, d := range k.DaysOfMonth.Days {
			dates[ordinalDate(k.DaysOfMonth.Year, time.Month(k.DaysOfMonth.Month), d)] = struct{}{}
		}
	case KeyDateSlot:
		if k.DateSlot == nil {
			return dates
		}
		start, end, err := k.DateSlot.Bounds()
		if err != nil {
			return dates
		}
		first := start.In(loc)
		last := end.In(loc)
		for d := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc); ordinalOf(d) <= ordinalOf(last); d = d.AddDate(0, 0, 1) {
			dates[ordinalOf(d)] = struct{}{}
		}
	}
	return dates
}

func ordinalDate(year int, month time.Month, day int) int {
	return year*10000 + int(month)*100 + day
}

func ordinalOf(t time.Time) int {
	return ordinalDate(t.Year(), t.Month(), t.Day())
}

// ScheduleEntry pairs a calendar key with the time-of-day range bookable on
// the dates it covers.
type ScheduleEntry struct {
	Key      CalendarKey `json:"key"`
	TimeSlot TimeSlot    `json:"time_slot"`
}

// ExpertAvailability is an expert's declared schedule: an IANA timezone and
// an ordered list of calendar-key → time-slot entries. Entries are kept in
// insertion order; resolution returns the first match, so earlier entries
// win deterministically.
type ExpertAvailability struct {
	Timezone string          `json:"timezone"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// Value implements the driver.Valuer interface
func (a ExpertAvailability) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (a *ExpertAvailability) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal ExpertAvailability: unsupported type %T", value)
	}

	return json.Unmarshal(data, a)
}

// Location resolves the declared timezone, defaulting to UTC when blank.
func (a ExpertAvailability) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}

// AddEntry appends a schedule entry after validating the key and time range
// and rejecting any key whose covered dates intersect an existing entry's.
func (a *ExpertAvailability) AddEntry(key CalendarKey, slot TimeSlot) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if !IsValidTimeRange(slot.Start, slot.End) {
		return fmt.Errorf("invalid time range %s-%s", slot.Start, slot.End)
	}
	loc, err := a.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %v", a.Timezone, err)
	}
	incoming := key.coveredDates(loc)
	for _, entry := range a.Schedule {
		for date := range entry.Key.coveredDates(loc) {
			if _, clash := incoming[date]; clash {
				return fmt.Errorf("schedule entry overlaps an existing entry on %d", date)
			}
		}
	}
	a.Schedule = append(a.Schedule, ScheduleEntry{Key: key, TimeSlot: slot})
	return nil
}

// ResolveTimeSlot returns the time slot bookable on the given calendar date
// in the availability's own timezone, or nil when no entry covers it.
// Entries are scanned in insertion order and the first match wins.
func (a ExpertAvailability) ResolveTimeSlot(day, month, year int) (*TimeSlot, error) {
	loc, err := a.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %v", a.Timezone, err)
	}
	for _, entry := range a.Schedule {
		if entry.Key.Covers(day, month, year, loc) {
			slot := entry.TimeSlot
			return &slot, nil
		}
	}
	return nil, nil
}
