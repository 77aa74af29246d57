// Package store owns the canonical entity collections and id minting.
// It is not safe for concurrent use on its own; the scheduling service
// serializes access behind its writer lock.
package store

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/noah-isme/timetable-api/internal/models"
)

// Id prefixes, one per entity kind.
const (
	coursePrefix    = "C"
	professorPrefix = "P"
	roomPrefix      = "R"
	timeSlotPrefix  = "T"
	entryPrefix     = "TE"
)

// Store holds the canonical collections. All read accessors return copies
// so callers cannot corrupt internal state.
type Store struct {
	courses    []models.Course
	professors []models.Professor
	rooms      []models.Room
	timeSlots  []models.TimeSlot
	entries    []models.Entry

	courseSeq    int
	professorSeq int
	roomSeq      int
	timeSlotSeq  int
	entrySeq     int
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddCourse assigns the next course id and appends the course.
func (s *Store) AddCourse(course models.Course) models.Course {
	s.courseSeq++
	course.ID = coursePrefix + strconv.Itoa(s.courseSeq)
	s.courses = append(s.courses, course)
	return course
}

// AddProfessor assigns the next professor id and appends the professor.
func (s *Store) AddProfessor(professor models.Professor) models.Professor {
	s.professorSeq++
	professor.ID = professorPrefix + strconv.Itoa(s.professorSeq)
	s.professors = append(s.professors, professor)
	return professor
}

// AddRoom assigns the next room id and appends the room.
func (s *Store) AddRoom(room models.Room) models.Room {
	s.roomSeq++
	room.ID = roomPrefix + strconv.Itoa(s.roomSeq)
	s.rooms = append(s.rooms, room)
	return room
}

// AddTimeSlot assigns the next time slot id and appends the slot.
func (s *Store) AddTimeSlot(slot models.TimeSlot) models.TimeSlot {
	s.timeSlotSeq++
	slot.ID = timeSlotPrefix + strconv.Itoa(s.timeSlotSeq)
	s.timeSlots = append(s.timeSlots, slot)
	return slot
}

// NextEntryID returns the id the next committed entry will receive. The
// sequence only advances on AppendEntry, so a rejected candidate burns
// nothing.
func (s *Store) NextEntryID() string {
	return entryPrefix + strconv.Itoa(s.entrySeq+1)
}

// AppendEntry commits an entry built by the coordinator.
func (s *Store) AppendEntry(entry models.Entry) {
	s.entrySeq++
	s.entries = append(s.entries, entry)
}

// CourseByID looks up a course.
func (s *Store) CourseByID(id string) (models.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// ProfessorByID looks up a professor.
func (s *Store) ProfessorByID(id string) (models.Professor, bool) {
	for _, p := range s.professors {
		if p.ID == id {
			return p, true
		}
	}
	return models.Professor{}, false
}

// RoomByID looks up a room.
func (s *Store) RoomByID(id string) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// TimeSlotByID looks up a time slot.
func (s *Store) TimeSlotByID(id string) (models.TimeSlot, bool) {
	for _, t := range s.timeSlots {
		if t.ID == id {
			return t, true
		}
	}
	return models.TimeSlot{}, false
}

// Courses returns a copy of the course collection.
func (s *Store) Courses() []models.Course {
	return append([]models.Course{}, s.courses...)
}

// Professors returns a copy of the professor collection.
func (s *Store) Professors() []models.Professor {
	return append([]models.Professor{}, s.professors...)
}

// Rooms returns a copy of the room collection.
func (s *Store) Rooms() []models.Room {
	return append([]models.Room{}, s.rooms...)
}

// TimeSlots returns a copy of the time slot collection.
func (s *Store) TimeSlots() []models.TimeSlot {
	return append([]models.TimeSlot{}, s.timeSlots...)
}

// Entries returns a copy of the committed entries.
func (s *Store) Entries() []models.Entry {
	return append([]models.Entry{}, s.entries...)
}

// Snapshot captures the full store state.
func (s *Store) Snapshot() models.Snapshot {
	return models.Snapshot{
		Courses:    s.Courses(),
		Professors: s.Professors(),
		Rooms:      s.Rooms(),
		TimeSlots:  s.TimeSlots(),
		Entries:    s.Entries(),
	}
}

// Restore replaces the store contents with a previously saved snapshot and
// resumes id sequences past the highest restored id of each kind.
func (s *Store) Restore(snap models.Snapshot) {
	s.courses = append([]models.Course{}, snap.Courses...)
	s.professors = append([]models.Professor{}, snap.Professors...)
	s.rooms = append([]models.Room{}, snap.Rooms...)
	s.timeSlots = append([]models.TimeSlot{}, snap.TimeSlots...)
	s.entries = append([]models.Entry{}, snap.Entries...)

	s.courseSeq = maxSeq(coursePrefix, lo.Map(snap.Courses, func(c models.Course, _ int) string { return c.ID }))
	s.professorSeq = maxSeq(professorPrefix, lo.Map(snap.Professors, func(p models.Professor, _ int) string { return p.ID }))
	s.roomSeq = maxSeq(roomPrefix, lo.Map(snap.Rooms, func(r models.Room, _ int) string { return r.ID }))
	s.timeSlotSeq = maxSeq(timeSlotPrefix, lo.Map(snap.TimeSlots, func(t models.TimeSlot, _ int) string { return t.ID }))
	s.entrySeq = maxSeq(entryPrefix, lo.Map(snap.Entries, func(e models.Entry, _ int) string { return e.ID }))
}

func maxSeq(prefix string, ids []string) int {
	highest := 0
	for _, id := range ids {
		raw, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

