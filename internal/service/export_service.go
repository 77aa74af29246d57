package service

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/export"
)

var timetableHeaders = []string{"Entry", "Day", "Start", "End", "Course", "Professor", "Room", "Building"}

// ExportService renders the committed timetable as CSV or PDF.
type ExportService struct {
	scheduler *SchedulingService
	logger    *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(scheduler *SchedulingService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{scheduler: scheduler, logger: logger}
}

// TimetableCSV renders the timetable for one day, or the whole week when
// day is empty.
func (s *ExportService) TimetableCSV(day string) ([]byte, error) {
	raw, err := export.RenderCSV(s.timetableTable(day))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable csv")
	}
	return raw, nil
}

// TimetablePDF renders the timetable for one day, or the whole week when
// day is empty.
func (s *ExportService) TimetablePDF(day string) ([]byte, error) {
	title := "Weekly Timetable"
	if day != "" {
		title = fmt.Sprintf("Timetable - %s", day)
	}
	raw, err := export.RenderPDF(s.timetableTable(day), title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable pdf")
	}
	return raw, nil
}

func (s *ExportService) timetableTable(day string) export.Table {
	var entries []models.Entry
	if day == "" {
		entries = s.scheduler.AllScheduled()
	} else {
		entries = s.scheduler.ScheduleByDay(day)
	}

	rows := lo.Map(entries, func(e models.Entry, _ int) []string {
		return []string{
			e.ID,
			e.TimeSlot.Day,
			e.TimeSlot.StartTime,
			e.TimeSlot.EndTime,
			fmt.Sprintf("%s %s", e.Course.Code, e.Course.Name),
			e.Professor.Name,
			e.Room.RoomNumber,
			e.Room.Building,
		}
	})
	return export.Table{Headers: timetableHeaders, Rows: rows}
}
