package models

// Room types used by the seed data. Allocation treats the type as an opaque,
// case-insensitive string, so new types need no code change.
const (
	RoomTypeLectureHall = "Lecture Hall"
	RoomTypeLab         = "Lab"
	RoomTypeSeminar     = "Seminar Room"
)

// Room represents a physical room that classes can be scheduled into.
type Room struct {
	ID         string `db:"id" json:"id"`
	RoomNumber string `db:"room_number" json:"room_number"`
	Building   string `db:"building" json:"building"`
	Capacity   int    `db:"capacity" json:"capacity"`
	Type       string `db:"type" json:"type"`
}
