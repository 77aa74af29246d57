package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// SnapshotRepository persists full timetable snapshots to PostgreSQL.
// Each save is immutable; Load always returns the most recent one.
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a snapshot repository.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

type entryRow struct {
	ID          string `db:"id"`
	CourseID    string `db:"course_id"`
	ProfessorID string `db:"professor_id"`
	RoomID      string `db:"room_id"`
	TimeSlotID  string `db:"time_slot_id"`
}

// Save writes the snapshot and all member rows in one transaction.
func (r *SnapshotRepository) Save(ctx context.Context, snap models.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	snapshotID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, created_at) VALUES ($1, $2)`,
		snapshotID, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for _, c := range snap.Courses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_courses (snapshot_id, id, code, name, credits, department, enrolled_students)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			snapshotID, c.ID, c.Code, c.Name, c.Credits, c.Department, c.EnrolledStudents); err != nil {
			return fmt.Errorf("insert snapshot course: %w", err)
		}
	}
	for _, p := range snap.Professors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_professors (snapshot_id, id, name, department, email)
			 VALUES ($1, $2, $3, $4, $5)`,
			snapshotID, p.ID, p.Name, p.Department, p.Email); err != nil {
			return fmt.Errorf("insert snapshot professor: %w", err)
		}
	}
	for _, room := range snap.Rooms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_rooms (snapshot_id, id, room_number, building, capacity, type)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			snapshotID, room.ID, room.RoomNumber, room.Building, room.Capacity, room.Type); err != nil {
			return fmt.Errorf("insert snapshot room: %w", err)
		}
	}
	for _, slot := range snap.TimeSlots {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_time_slots (snapshot_id, id, day, start_time, end_time)
			 VALUES ($1, $2, $3, $4, $5)`,
			snapshotID, slot.ID, slot.Day, slot.StartTime, slot.EndTime); err != nil {
			return fmt.Errorf("insert snapshot time slot: %w", err)
		}
	}
	for _, entry := range snap.Entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_entries (snapshot_id, id, course_id, professor_id, room_id, time_slot_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			snapshotID, entry.ID, entry.Course.ID, entry.Professor.ID, entry.Room.ID, entry.TimeSlot.ID); err != nil {
			return fmt.Errorf("insert snapshot entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Load reads the most recent snapshot, resolving entry references against
// the catalog rows saved with it.
func (r *SnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	var snapshotID string
	err := r.db.GetContext(ctx, &snapshotID,
		`SELECT id FROM snapshots ORDER BY created_at DESC LIMIT 1`)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no snapshot available")
		}
		return nil, fmt.Errorf("select snapshot: %w", err)
	}

	snap := &models.Snapshot{}

	if err := r.db.SelectContext(ctx, &snap.Courses,
		`SELECT id, code, name, credits, department, enrolled_students
		 FROM snapshot_courses WHERE snapshot_id = $1 ORDER BY id`, snapshotID); err != nil {
		return nil, fmt.Errorf("select snapshot courses: %w", err)
	}
	if err := r.db.SelectContext(ctx, &snap.Professors,
		`SELECT id, name, department, email
		 FROM snapshot_professors WHERE snapshot_id = $1 ORDER BY id`, snapshotID); err != nil {
		return nil, fmt.Errorf("select snapshot professors: %w", err)
	}
	if err := r.db.SelectContext(ctx, &snap.Rooms,
		`SELECT id, room_number, building, capacity, type
		 FROM snapshot_rooms WHERE snapshot_id = $1 ORDER BY id`, snapshotID); err != nil {
		return nil, fmt.Errorf("select snapshot rooms: %w", err)
	}
	if err := r.db.SelectContext(ctx, &snap.TimeSlots,
		`SELECT id, day, start_time, end_time
		 FROM snapshot_time_slots WHERE snapshot_id = $1 ORDER BY id`, snapshotID); err != nil {
		return nil, fmt.Errorf("select snapshot time slots: %w", err)
	}

	var rows []entryRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, course_id, professor_id, room_id, time_slot_id
		 FROM snapshot_entries WHERE snapshot_id = $1 ORDER BY id`, snapshotID); err != nil {
		return nil, fmt.Errorf("select snapshot entries: %w", err)
	}

	entries, err := resolveEntries(rows, snap)
	if err != nil {
		return nil, err
	}
	snap.Entries = entries
	return snap, nil
}

func resolveEntries(rows []entryRow, snap *models.Snapshot) ([]models.Entry, error) {
	courses := make(map[string]models.Course, len(snap.Courses))
	for _, c := range snap.Courses {
		courses[c.ID] = c
	}
	professors := make(map[string]models.Professor, len(snap.Professors))
	for _, p := range snap.Professors {
		professors[p.ID] = p
	}
	rooms := make(map[string]models.Room, len(snap.Rooms))
	for _, room := range snap.Rooms {
		rooms[room.ID] = room
	}
	slots := make(map[string]models.TimeSlot, len(snap.TimeSlots))
	for _, slot := range snap.TimeSlots {
		slots[slot.ID] = slot
	}

	entries := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		course, ok := courses[row.CourseID]
		if !ok {
			return nil, fmt.Errorf("snapshot entry %s references unknown course %s", row.ID, row.CourseID)
		}
		professor, ok := professors[row.ProfessorID]
		if !ok {
			return nil, fmt.Errorf("snapshot entry %s references unknown professor %s", row.ID, row.ProfessorID)
		}
		room, ok := rooms[row.RoomID]
		if !ok {
			return nil, fmt.Errorf("snapshot entry %s references unknown room %s", row.ID, row.RoomID)
		}
		slot, ok := slots[row.TimeSlotID]
		if !ok {
			return nil, fmt.Errorf("snapshot entry %s references unknown time slot %s", row.ID, row.TimeSlotID)
		}
		entries = append(entries, models.Entry{
			ID:        row.ID,
			Course:    course,
			Professor: professor,
			Room:      room,
			TimeSlot:  slot,
		})
	}
	return entries, nil
}
