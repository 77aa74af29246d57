package timetable

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/noah-isme/timetable-api/internal/models"
)

// utilizationTarget is the occupancy percentage FindOptimal steers toward.
const utilizationTarget = 85.0

// RoomAllocator picks rooms for classes. It is stateless: every call is
// parameterized by the room catalog and the committed entry set.
type RoomAllocator struct{}

// NewRoomAllocator constructs an allocator.
func NewRoomAllocator() *RoomAllocator {
	return &RoomAllocator{}
}

// Allocate returns the smallest capacity-sufficient room that is free at
// the slot. Rooms of equal capacity are tried in id order. The boolean is
// false when no room fits.
func (a *RoomAllocator) Allocate(requiredCapacity int, slot models.TimeSlot, rooms []models.Room, existing []models.Entry) (models.Room, bool) {
	for _, room := range sortedByCapacity(rooms) {
		if room.Capacity < requiredCapacity {
			continue
		}
		if a.isRoomFree(room, slot, existing) {
			return room, true
		}
	}
	return models.Room{}, false
}

// AllocateWithType first tries rooms of the preferred type (matched
// case-insensitively) and falls back to the full catalog when none fits.
func (a *RoomAllocator) AllocateWithType(requiredCapacity int, preferredType string, slot models.TimeSlot, rooms []models.Room, existing []models.Entry) (models.Room, bool) {
	preferred := lo.Filter(rooms, func(r models.Room, _ int) bool {
		return strings.EqualFold(r.Type, preferredType)
	})
	if room, ok := a.Allocate(requiredCapacity, slot, preferred, existing); ok {
		return room, true
	}
	return a.Allocate(requiredCapacity, slot, rooms, existing)
}

// Available returns the rooms free at the slot, sorted ascending by
// capacity.
func (a *RoomAllocator) Available(slot models.TimeSlot, rooms []models.Room, existing []models.Entry) []models.Room {
	free := lo.Filter(rooms, func(r models.Room, _ int) bool {
		return a.isRoomFree(r, slot, existing)
	})
	return sortedByCapacity(free)
}

// Utilization is enrolled students as a percentage of room capacity.
func (a *RoomAllocator) Utilization(studentCount int, room models.Room) float64 {
	if room.Capacity == 0 {
		return 0.0
	}
	return float64(studentCount) * 100.0 / float64(room.Capacity)
}

// FindOptimal returns the free, capacity-sufficient room whose utilization
// sits closest to the target occupancy. Ties go to the smaller capacity,
// then the smaller id.
func (a *RoomAllocator) FindOptimal(requiredCapacity int, slot models.TimeSlot, rooms []models.Room, existing []models.Entry) (models.Room, bool) {
	var best models.Room
	found := false
	bestDistance := math.MaxFloat64

	for _, room := range a.Available(slot, rooms, existing) {
		if room.Capacity < requiredCapacity {
			continue
		}
		distance := math.Abs(a.Utilization(requiredCapacity, room) - utilizationTarget)
		switch {
		case !found || distance < bestDistance:
		case distance == bestDistance && room.Capacity < best.Capacity:
		case distance == bestDistance && room.Capacity == best.Capacity && room.ID < best.ID:
		default:
			continue
		}
		best = room
		found = true
		bestDistance = distance
	}
	return best, found
}

func (a *RoomAllocator) isRoomFree(room models.Room, slot models.TimeSlot, existing []models.Entry) bool {
	for _, entry := range existing {
		if entry.Room.ID == room.ID && entry.TimeSlot.Overlaps(slot) {
			return false
		}
	}
	return true
}

// sortedByCapacity returns a copy sorted ascending by capacity, breaking
// ties by id so allocation order is deterministic.
func sortedByCapacity(rooms []models.Room) []models.Room {
	sorted := append([]models.Room{}, rooms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Capacity != sorted[j].Capacity {
			return sorted[i].Capacity < sorted[j].Capacity
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
