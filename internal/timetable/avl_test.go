package timetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

func testEntry(id, courseName, professorID, roomID, day, start, end string) models.Entry {
	return models.Entry{
		ID:        id,
		Course:    models.Course{ID: "C-" + id, Name: courseName},
		Professor: models.Professor{ID: professorID},
		Room:      models.Room{ID: roomID},
		TimeSlot:  models.TimeSlot{Day: day, StartTime: start, EndTime: end},
	}
}

func TestScheduleTreeInsertAndOrder(t *testing.T) {
	tree := NewScheduleTree()

	entries := []models.Entry{
		testEntry("TE1", "Computer Vision", "P1", "R1", "Wednesday", "09:00", "10:30"),
		testEntry("TE2", "Advanced Algorithms", "P2", "R2", "Monday", "14:00", "15:30"),
		testEntry("TE3", "Cloud Application Development", "P3", "R3", "Monday", "09:00", "10:30"),
		testEntry("TE4", "Natural Language Processing", "P4", "R4", "Tuesday", "11:00", "12:30"),
	}
	for _, e := range entries {
		require.Empty(t, tree.Insert(e))
	}
	require.Equal(t, 4, tree.Len())

	all := tree.All()
	require.Len(t, all, 4)
	assert.Equal(t, "TE3", all[0].ID)
	assert.Equal(t, "TE2", all[1].ID)
	assert.Equal(t, "TE4", all[2].ID)
	assert.Equal(t, "TE1", all[3].ID)
}

func TestScheduleTreeDetectsRoomConflict(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))

	conflicts := tree.Insert(testEntry("TE2", "Computer Vision", "P2", "R1", "Monday", "10:00", "11:30"))
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Conflict detected with: Advanced Algorithms at 09:00", conflicts[0])
	assert.Equal(t, 1, tree.Len())
}

func TestScheduleTreeDetectsProfessorConflict(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))

	// Different room, same professor, overlapping window.
	conflicts := tree.Insert(testEntry("TE2", "Computer Vision", "P1", "R2", "Monday", "09:30", "11:00"))
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "Advanced Algorithms")
}

func TestScheduleTreeAllowsBackToBack(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))

	// Shared boundary, same room and professor: half-open windows do not
	// overlap.
	require.Empty(t, tree.Insert(testEntry("TE2", "Computer Vision", "P1", "R1", "Monday", "10:30", "12:00")))
	assert.Equal(t, 2, tree.Len())
}

func TestScheduleTreeAllowsSameTimeDifferentResources(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))
	require.Empty(t, tree.Insert(testEntry("TE2", "Computer Vision", "P2", "R2", "Monday", "09:00", "10:30")))
	assert.Equal(t, 2, tree.Len())
}

func TestScheduleTreeIgnoresOtherDays(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))
	require.Empty(t, tree.Insert(testEntry("TE2", "Computer Vision", "P1", "R1", "Tuesday", "09:00", "10:30")))
	assert.Equal(t, 2, tree.Len())
}

func TestScheduleTreeRejectionLeavesStateUntouched(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))
	before := tree.All()

	conflicts := tree.Insert(testEntry("TE2", "Computer Vision", "P1", "R1", "Monday", "09:00", "10:30"))
	require.NotEmpty(t, conflicts)

	assert.Equal(t, before, tree.All())
	assert.Equal(t, 1, tree.Len())

	// A compatible insert still succeeds afterwards.
	require.Empty(t, tree.Insert(testEntry("TE2", "Computer Vision", "P2", "R2", "Monday", "09:00", "10:30")))
	assert.Equal(t, 2, tree.Len())
}

func TestScheduleTreeReportsAllConflicts(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Advanced Algorithms", "P1", "R1", "Monday", "09:00", "10:30")))
	require.Empty(t, tree.Insert(testEntry("TE2", "Computer Vision", "P2", "R2", "Monday", "10:00", "11:30")))

	// Candidate collides with TE1 via the professor and TE2 via the room.
	conflicts := tree.Insert(testEntry("TE3", "Cloud Application Development", "P1", "R2", "Monday", "09:30", "11:00"))
	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts[0], "Advanced Algorithms")
	assert.Contains(t, conflicts[1], "Computer Vision")
}

func TestScheduleTreeFindByDay(t *testing.T) {
	tree := NewScheduleTree()
	require.Empty(t, tree.Insert(testEntry("TE1", "Computer Vision", "P1", "R1", "Monday", "14:00", "15:30")))
	require.Empty(t, tree.Insert(testEntry("TE2", "Advanced Algorithms", "P2", "R2", "Monday", "09:00", "10:30")))
	require.Empty(t, tree.Insert(testEntry("TE3", "Cloud Application Development", "P3", "R3", "Tuesday", "09:00", "10:30")))

	monday := tree.FindByDay("monday")
	require.Len(t, monday, 2)
	assert.Equal(t, "TE2", monday[0].ID)
	assert.Equal(t, "TE1", monday[1].ID)

	assert.Len(t, tree.FindByDay("Tuesday"), 1)
	assert.Empty(t, tree.FindByDay("Sunday"))
}

func TestScheduleTreeDuplicateKeysKept(t *testing.T) {
	tree := NewScheduleTree()
	for i := 1; i <= 5; i++ {
		e := testEntry(fmt.Sprintf("TE%d", i), "Course", fmt.Sprintf("P%d", i), fmt.Sprintf("R%d", i), "Monday", "09:00", "10:30")
		require.Empty(t, tree.Insert(e))
	}
	assert.Equal(t, 5, tree.Len())
	assert.Len(t, tree.FindByDay("Monday"), 5)
}

func TestScheduleTreeStaysOrderedUnderLoad(t *testing.T) {
	tree := NewScheduleTree()
	days := []string{"Friday", "Monday", "Wednesday", "Tuesday", "Thursday"}
	id := 0
	for _, day := range days {
		for hour := 18; hour >= 8; hour -= 2 {
			id++
			start := fmt.Sprintf("%02d:00", hour)
			end := fmt.Sprintf("%02d:00", hour+1)
			e := testEntry(fmt.Sprintf("TE%d", id), "Course", fmt.Sprintf("P%d", id), fmt.Sprintf("R%d", id), day, start, end)
			require.Empty(t, tree.Insert(e))
		}
	}

	all := tree.All()
	require.Len(t, all, id)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.TimeSlot.Day == cur.TimeSlot.Day {
			assert.LessOrEqual(t, prev.TimeSlot.StartTime, cur.TimeSlot.StartTime)
		}
	}
}
