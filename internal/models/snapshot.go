package models

// Snapshot is a full copy of the in-memory state, used by the optional
// durable store's load/save hooks.
type Snapshot struct {
	Courses    []Course    `json:"courses"`
	Professors []Professor `json:"professors"`
	Rooms      []Room      `json:"rooms"`
	TimeSlots  []TimeSlot  `json:"time_slots"`
	Entries    []Entry     `json:"entries"`
}
