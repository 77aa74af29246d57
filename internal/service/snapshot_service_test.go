package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

type mockSnapshotRepo struct {
	saved   *models.Snapshot
	loaded  *models.Snapshot
	saveErr error
	loadErr error
}

func (m *mockSnapshotRepo) Save(ctx context.Context, snap models.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &snap
	return nil
}

func (m *mockSnapshotRepo) Load(ctx context.Context) (*models.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loaded, nil
}

func TestSnapshotServiceSave(t *testing.T) {
	scheduler := newTestScheduler(t)
	addRoom(t, scheduler, "101", 50)
	course := addCourse(t, scheduler, "CS701", "Advanced Algorithms", 40)
	professor := addProfessor(t, scheduler, "Prof. Arun Mehta")
	slot := addSlot(t, scheduler, "Monday", "09:00", "10:30")
	require.True(t, scheduler.Schedule(course.ID, professor.ID, slot.ID).Success)

	repo := &mockSnapshotRepo{}
	snapshots := NewSnapshotService(scheduler, repo, nil)

	snap, err := snapshots.Save(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Len(t, snap.Entries, 1)
	assert.Equal(t, snap, *repo.saved)
}

func TestSnapshotServiceSaveError(t *testing.T) {
	repo := &mockSnapshotRepo{saveErr: errors.New("connection refused")}
	snapshots := NewSnapshotService(newTestScheduler(t), repo, nil)

	_, err := snapshots.Save(context.Background())
	require.Error(t, err)
}

func TestSnapshotServiceLoadRestoresScheduler(t *testing.T) {
	source := newTestScheduler(t)
	addRoom(t, source, "101", 50)
	course := addCourse(t, source, "CS701", "Advanced Algorithms", 40)
	professor := addProfessor(t, source, "Prof. Arun Mehta")
	slot := addSlot(t, source, "Monday", "09:00", "10:30")
	require.True(t, source.Schedule(course.ID, professor.ID, slot.ID).Success)
	snap := source.Snapshot()

	scheduler := newTestScheduler(t)
	repo := &mockSnapshotRepo{loaded: &snap}
	snapshots := NewSnapshotService(scheduler, repo, nil)

	require.NoError(t, snapshots.Load(context.Background()))
	assert.Equal(t, source.AllScheduled(), scheduler.AllScheduled())
	assert.Equal(t, []string{"CS701"}, scheduler.AutoCompleteCourse("CS"))
}

func TestSnapshotServiceLoadError(t *testing.T) {
	repo := &mockSnapshotRepo{loadErr: errors.New("no snapshot available")}
	snapshots := NewSnapshotService(newTestScheduler(t), repo, nil)

	err := snapshots.Load(context.Background())
	require.Error(t, err)
}
