package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduledFixture(t *testing.T) *SchedulingService {
	t.Helper()
	s := newTestScheduler(t)
	addRoom(t, s, "101", 50)
	addRoom(t, s, "102", 50)
	course := addCourse(t, s, "CS701", "Advanced Algorithms", 40)
	other := addCourse(t, s, "CS706", "Computer Vision", 40)
	p1 := addProfessor(t, s, "Prof. Arun Mehta")
	p2 := addProfessor(t, s, "Dr. Emily Chen")
	monday := addSlot(t, s, "Monday", "09:00", "10:30")
	tuesday := addSlot(t, s, "Tuesday", "11:00", "12:30")

	require.True(t, s.Schedule(course.ID, p1.ID, monday.ID).Success)
	require.True(t, s.Schedule(other.ID, p2.ID, tuesday.ID).Success)
	return s
}

func TestTimetableCSVWholeWeek(t *testing.T) {
	exports := NewExportService(newScheduledFixture(t), nil)

	raw, err := exports.TimetableCSV("")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Entry", "Day", "Start", "End", "Course", "Professor", "Room", "Building"}, records[0])
	assert.Equal(t, []string{"TE1", "Monday", "09:00", "10:30", "CS701 Advanced Algorithms", "Prof. Arun Mehta", "101", "Building 1"}, records[1])
	assert.Equal(t, "Tuesday", records[2][1])
}

func TestTimetableCSVSingleDay(t *testing.T) {
	exports := NewExportService(newScheduledFixture(t), nil)

	raw, err := exports.TimetableCSV("tuesday")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TE2", records[1][0])
}

func TestTimetableCSVEmptySchedule(t *testing.T) {
	exports := NewExportService(newTestScheduler(t), nil)

	raw, err := exports.TimetableCSV("")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestTimetablePDF(t *testing.T) {
	exports := NewExportService(newScheduledFixture(t), nil)

	raw, err := exports.TimetablePDF("Monday")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
