package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// Seed populates an empty coordinator with a deterministic sample campus:
// one building of 72 rooms, a third-year CS course set, a professor
// roster, nine weekly slots, and a handful of classes committed through
// the conflict index.
func (s *SchedulingService) Seed() error {
	rooms, err := s.seedRooms()
	if err != nil {
		return err
	}
	courses, err := s.seedCourses()
	if err != nil {
		return err
	}
	professors, err := s.seedProfessors()
	if err != nil {
		return err
	}
	slots, err := s.seedTimeSlots()
	if err != nil {
		return err
	}

	placements := []struct{ course, professor, room, slot int }{
		{0, 0, 0, 0},
		{6, 1, 5, 1},
		{1, 2, 10, 2},
		{2, 3, 11, 3},
		{3, 4, 2, 4},
		{4, 5, 15, 5},
		{5, 6, 20, 6},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range placements {
		entry := models.Entry{
			ID:        s.store.NextEntryID(),
			Course:    courses[p.course],
			Professor: professors[p.professor],
			Room:      rooms[p.room],
			TimeSlot:  slots[p.slot],
		}
		if conflicts := s.tree.Insert(entry); len(conflicts) > 0 {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("seed entry for %s conflicts: %s", entry.Course.Code, strings.Join(conflicts, "; ")))
		}
		s.store.AppendEntry(entry)
	}
	return nil
}

// seedRooms creates Building 1: floors 1-7 with ten rooms each following a
// formulaic capacity rule, plus two labs.
func (s *SchedulingService) seedRooms() ([]models.Room, error) {
	const building = "Building 1"

	var requests []CreateRoomRequest
	for floor := 1; floor <= 7; floor++ {
		for room := 1; room <= 10; room++ {
			roomType := models.RoomTypeLectureHall
			if room%3 == 0 {
				roomType = models.RoomTypeSeminar
			}
			requests = append(requests, CreateRoomRequest{
				RoomNumber: fmt.Sprintf("%d%02d", floor, room),
				Building:   building,
				Capacity:   35 + floor*3 + (room%4)*5,
				Type:       roomType,
			})
		}
	}
	requests = append(requests,
		CreateRoomRequest{RoomNumber: "101A", Building: building, Capacity: 32, Type: models.RoomTypeLab},
		CreateRoomRequest{RoomNumber: "101B", Building: building, Capacity: 32, Type: models.RoomTypeLab},
	)

	rooms := make([]models.Room, 0, len(requests))
	for _, req := range requests {
		room, err := s.AddRoom(req)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *SchedulingService) seedCourses() ([]models.Course, error) {
	requests := []CreateCourseRequest{
		{Code: "CS701", Name: "Advanced Algorithms", Credits: 4, Department: "Computer Science", EnrolledStudents: 48},
		{Code: "CS702", Name: "Emerging Technologies (Theory)", Credits: 3, Department: "Computer Science", EnrolledStudents: 46},
		{Code: "CS702L", Name: "Emerging Technologies Lab", Credits: 1, Department: "Computer Science", EnrolledStudents: 24},
		{Code: "CS703", Name: "Numeric Optimization Techniques", Credits: 3, Department: "Computer Science", EnrolledStudents: 52},
		{Code: "CS704", Name: "Cloud Application Development", Credits: 3, Department: "Computer Science", EnrolledStudents: 50},
		{Code: "CS705", Name: "Natural Language Processing", Credits: 3, Department: "Computer Science", EnrolledStudents: 45},
		{Code: "CS706", Name: "Computer Vision", Credits: 3, Department: "Computer Science", EnrolledStudents: 44},
	}

	courses := make([]models.Course, 0, len(requests))
	for _, req := range requests {
		course, err := s.AddCourse(req)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *SchedulingService) seedProfessors() ([]models.Professor, error) {
	requests := []CreateProfessorRequest{
		{Name: "Prof. Arun Mehta", Department: "Computer Science", Email: "arun.mehta@university.edu"},
		{Name: "Prof. Lena Hoffmann", Department: "Computer Vision", Email: "lena.hoffmann@university.edu"},
		{Name: "Dr. Ravi Kulkarni", Department: "Emerging Technologies", Email: "ravi.kulkarni@university.edu"},
		{Name: "Prof. Martin Okafor", Department: "Emerging Technologies Lab", Email: "martin.okafor@university.edu"},
		{Name: "Prof. Elena Vasquez", Department: "Mathematics", Email: "elena.vasquez@university.edu"},
		{Name: "Dr. Sarah Lindgren", Department: "Cloud Computing", Email: "sarah.lindgren@university.edu"},
		{Name: "Dr. Emily Chen", Department: "Natural Language Processing", Email: "emily.chen@university.edu"},
	}

	professors := make([]models.Professor, 0, len(requests))
	for _, req := range requests {
		professor, err := s.AddProfessor(req)
		if err != nil {
			return nil, err
		}
		professors = append(professors, professor)
	}
	return professors, nil
}

func (s *SchedulingService) seedTimeSlots() ([]models.TimeSlot, error) {
	requests := []CreateTimeSlotRequest{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Monday", StartTime: "11:00", EndTime: "12:30"},
		{Day: "Monday", StartTime: "14:00", EndTime: "15:30"},
		{Day: "Tuesday", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Tuesday", StartTime: "11:00", EndTime: "12:30"},
		{Day: "Wednesday", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Wednesday", StartTime: "14:00", EndTime: "15:30"},
		{Day: "Thursday", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Friday", StartTime: "11:00", EndTime: "12:30"},
	}

	slots := make([]models.TimeSlot, 0, len(requests))
	for _, req := range requests {
		slot, err := s.AddTimeSlot(req)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
