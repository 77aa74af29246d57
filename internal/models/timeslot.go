package models

import "strings"

// TimeSlot is a recurring weekly window. Times are zero-padded 24-hour
// "HH:MM" strings, so lexicographic order matches chronological order
// within a day. Day names compare case-insensitively.
type TimeSlot struct {
	ID        string `db:"id" json:"id"`
	Day       string `db:"day" json:"day"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

// SameDay reports whether the slot falls on the given weekday.
func (t TimeSlot) SameDay(day string) bool {
	return strings.EqualFold(t.Day, day)
}

// Overlaps reports whether two slots collide in time. Intervals are
// half-open: back-to-back slots sharing a boundary do not overlap.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	if !t.SameDay(other.Day) {
		return false
	}
	return t.StartTime < other.EndTime && other.StartTime < t.EndTime
}
