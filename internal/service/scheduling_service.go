package service

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/store"
	"github.com/noah-isme/timetable-api/internal/timetable"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// Result messages returned by Schedule. They are part of the API contract.
const (
	msgInvalidIDs = "Invalid course, professor, or time slot"
	msgNoRoom     = "No suitable room available for this time slot"
	msgNoRoomHint = "Try a different time slot"
	msgConflict   = "Scheduling conflict detected"
	msgScheduled  = "Class scheduled successfully"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// CreateCourseRequest describes the payload for adding a course.
type CreateCourseRequest struct {
	Code             string `json:"code" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Credits          int    `json:"credits" validate:"min=0"`
	Department       string `json:"department"`
	EnrolledStudents int    `json:"enrolled_students" validate:"min=0"`
}

// CreateProfessorRequest describes the payload for adding a professor.
type CreateProfessorRequest struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Email      string `json:"email" validate:"omitempty,email"`
}

// CreateRoomRequest describes the payload for adding a room.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Building   string `json:"building" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	Type       string `json:"type"`
}

// CreateTimeSlotRequest describes the payload for adding a time slot.
type CreateTimeSlotRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// SchedulingService is the coordinator: it owns the entity store, both
// prefix indexes, the conflict index, and the room allocator, and keeps
// them mutually consistent. All mutations run under a single writer lock,
// so schedule requests are linearizable.
type SchedulingService struct {
	mu sync.RWMutex

	store       *store.Store
	tree        *timetable.ScheduleTree
	courseIndex *timetable.Trie
	roomIndex   *timetable.Trie
	allocator   *timetable.RoomAllocator

	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewSchedulingService builds a coordinator over an empty catalog.
func NewSchedulingService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *SchedulingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulingService{
		store:       store.New(),
		tree:        timetable.NewScheduleTree(),
		courseIndex: timetable.NewTrie(),
		roomIndex:   timetable.NewTrie(),
		allocator:   timetable.NewRoomAllocator(),
		validator:   validate,
		logger:      logger,
		metrics:     metrics,
	}
}

// Schedule places a class into a room at the requested slot. Failures are
// reported in the result, never as an error: unknown ids, allocation
// failure, and conflicts all leave the committed state untouched.
func (s *SchedulingService) Schedule(courseID, professorID, timeSlotID string) *models.ScheduleResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, courseOK := s.store.CourseByID(courseID)
	professor, professorOK := s.store.ProfessorByID(professorID)
	slot, slotOK := s.store.TimeSlotByID(timeSlotID)
	if !courseOK || !professorOK || !slotOK {
		s.recordSchedule("unknown_id")
		return &models.ScheduleResult{Success: false, Message: msgInvalidIDs}
	}

	room, ok := s.allocator.Allocate(course.EnrolledStudents, slot, s.store.Rooms(), s.store.Entries())
	if !ok {
		s.recordSchedule("no_room")
		return &models.ScheduleResult{
			Success:    false,
			Message:    msgNoRoom,
			Suggestion: msgNoRoomHint,
		}
	}

	entry := models.Entry{
		ID:        s.store.NextEntryID(),
		Course:    course,
		Professor: professor,
		Room:      room,
		TimeSlot:  slot,
	}

	if conflicts := s.tree.Insert(entry); len(conflicts) > 0 {
		s.recordSchedule("conflict")
		return &models.ScheduleResult{
			Success:   false,
			Message:   msgConflict,
			Conflicts: conflicts,
		}
	}

	s.store.AppendEntry(entry)
	utilization := s.allocator.Utilization(course.EnrolledStudents, room)

	s.logger.Debug("class scheduled",
		zap.String("entry_id", entry.ID),
		zap.String("course_id", course.ID),
		zap.String("room_id", room.ID))
	s.recordSchedule("scheduled")

	return &models.ScheduleResult{
		Success:     true,
		Message:     msgScheduled,
		Entry:       &entry,
		Room:        &room,
		Utilization: fmt.Sprintf("%.1f%%", utilization),
	}
}

// AutoCompleteCourse suggests course codes and names for a prefix.
func (s *SchedulingService) AutoCompleteCourse(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courseIndex.Enumerate(prefix)
}

// AutoCompleteRoom suggests room numbers and buildings for a prefix.
func (s *SchedulingService) AutoCompleteRoom(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roomIndex.Enumerate(prefix)
}

// AvailableRooms lists the rooms free at the slot, sorted by capacity.
// An unknown slot id yields an empty list.
func (s *SchedulingService) AvailableRooms(timeSlotID string) []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.store.TimeSlotByID(timeSlotID)
	if !ok {
		return []models.Room{}
	}
	return s.allocator.Available(slot, s.store.Rooms(), s.store.Entries())
}

// PreviewAllocation reports which room a schedule request would receive,
// without committing anything. An empty preferredType means no preference;
// requesting an optimal fit targets the allocator's utilization goal
// instead of the smallest sufficient room.
func (s *SchedulingService) PreviewAllocation(requiredCapacity int, preferredType, timeSlotID string, optimal bool) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.store.TimeSlotByID(timeSlotID)
	if !ok {
		return models.Room{}, false
	}
	rooms := s.store.Rooms()
	entries := s.store.Entries()
	if optimal {
		return s.allocator.FindOptimal(requiredCapacity, slot, rooms, entries)
	}
	if preferredType != "" {
		return s.allocator.AllocateWithType(requiredCapacity, preferredType, slot, rooms, entries)
	}
	return s.allocator.Allocate(requiredCapacity, slot, rooms, entries)
}

// ScheduleByDay returns the committed entries for a weekday in start-time
// order.
func (s *SchedulingService) ScheduleByDay(day string) []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.FindByDay(day)
}

// AllScheduled returns every committed entry in (day, startTime) order.
func (s *SchedulingService) AllScheduled() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.All()
}

// AddCourse validates and stores a course, indexing its code and name for
// auto-completion.
func (s *SchedulingService) AddCourse(req CreateCourseRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.store.AddCourse(models.Course{
		Code:             req.Code,
		Name:             req.Name,
		Credits:          req.Credits,
		Department:       req.Department,
		EnrolledStudents: req.EnrolledStudents,
	})
	s.courseIndex.Insert(course.Code)
	s.courseIndex.Insert(course.Name)
	return course, nil
}

// AddProfessor validates and stores a professor.
func (s *SchedulingService) AddProfessor(req CreateProfessorRequest) (models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Professor{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.AddProfessor(models.Professor{
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
	}), nil
}

// AddRoom validates and stores a room, indexing its number and building
// for auto-completion.
func (s *SchedulingService) AddRoom(req CreateRoomRequest) (models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Room{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.store.AddRoom(models.Room{
		RoomNumber: req.RoomNumber,
		Building:   req.Building,
		Capacity:   req.Capacity,
		Type:       req.Type,
	})
	s.roomIndex.Insert(room.RoomNumber)
	s.roomIndex.Insert(room.Building)
	return room, nil
}

// AddTimeSlot validates and stores a weekly time slot. The day must be an
// English weekday name and times must be zero-padded 24-hour HH:MM with
// start strictly before end.
func (s *SchedulingService) AddTimeSlot(req CreateTimeSlotRequest) (models.TimeSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.TimeSlot{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload")
	}
	if err := validateSlotTimes(req.Day, req.StartTime, req.EndTime); err != nil {
		return models.TimeSlot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.AddTimeSlot(models.TimeSlot{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}), nil
}

// ListCourses returns a copy of the course catalog.
func (s *SchedulingService) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Courses()
}

// ListProfessors returns a copy of the professor roster.
func (s *SchedulingService) ListProfessors() []models.Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Professors()
}

// ListRooms returns a copy of the room catalog.
func (s *SchedulingService) ListRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Rooms()
}

// ListTimeSlots returns a copy of the slot catalog.
func (s *SchedulingService) ListTimeSlots() []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.TimeSlots()
}

// Snapshot captures the full in-memory state for the durable store hooks.
func (s *SchedulingService) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Snapshot()
}

// Restore replaces all state from a snapshot and rebuilds both prefix
// indexes and the conflict index. Entries are re-inserted through the
// conflict index; a snapshot whose entries collide is rejected whole.
func (s *SchedulingService) Restore(snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree := timetable.NewScheduleTree()
	for _, entry := range snap.Entries {
		if conflicts := tree.Insert(entry); len(conflicts) > 0 {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("snapshot entry %s conflicts: %s", entry.ID, strings.Join(conflicts, "; ")))
		}
	}

	courseIndex := timetable.NewTrie()
	for _, course := range snap.Courses {
		courseIndex.Insert(course.Code)
		courseIndex.Insert(course.Name)
	}
	roomIndex := timetable.NewTrie()
	for _, room := range snap.Rooms {
		roomIndex.Insert(room.RoomNumber)
		roomIndex.Insert(room.Building)
	}

	s.store.Restore(snap)
	s.tree = tree
	s.courseIndex = courseIndex
	s.roomIndex = roomIndex
	return nil
}

func (s *SchedulingService) recordSchedule(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordScheduleAttempt(outcome)
	}
}

func validateSlotTimes(day, start, end string) error {
	if _, ok := weekdays[strings.ToLower(day)]; !ok {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", day))
	}
	if !hhmmPattern.MatchString(start) || !hhmmPattern.MatchString(end) {
		return appErrors.Clone(appErrors.ErrValidation, "times must be zero-padded 24-hour HH:MM")
	}
	if start >= end {
		return appErrors.Clone(appErrors.ErrValidation, "start time must be before end time")
	}
	return nil
}
