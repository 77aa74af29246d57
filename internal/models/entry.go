package models

// Entry is a committed placement of one course/professor into one room at
// one time slot. Referenced entities are stored by value; they are
// immutable after creation, so the copies stay consistent with the
// catalog and double as defensive copies on read paths.
type Entry struct {
	ID        string    `json:"id"`
	Course    Course    `json:"course"`
	Professor Professor `json:"professor"`
	Room      Room      `json:"room"`
	TimeSlot  TimeSlot  `json:"time_slot"`
}

// ConflictsWith reports whether two entries collide: same day, strictly
// overlapping times, and a shared room or professor.
func (e Entry) ConflictsWith(other Entry) bool {
	sameRoom := e.Room.ID == other.Room.ID
	sameProfessor := e.Professor.ID == other.Professor.ID
	if !sameRoom && !sameProfessor {
		return false
	}
	return e.TimeSlot.Overlaps(other.TimeSlot)
}

// ScheduleResult is the structured outcome of a schedule request. Failures
// are part of the result contract, not out-of-band errors.
type ScheduleResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Conflicts   []string `json:"conflicts,omitempty"`
	Entry       *Entry   `json:"entry,omitempty"`
	Room        *Room    `json:"room,omitempty"`
	Utilization string   `json:"utilization,omitempty"`
}
