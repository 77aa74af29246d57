package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
)

// Dependencies bundles the services the HTTP layer binds. Exports and
// Snapshots are optional; nil disables their routes.
type Dependencies struct {
	Scheduler *service.SchedulingService
	Cache     *service.CacheService
	Exports   *service.ExportService
	Snapshots *service.SnapshotService
}

// Register binds every facade operation under the API group.
func Register(api *gin.RouterGroup, deps Dependencies) {
	schedule := NewScheduleHandler(deps.Scheduler, deps.Cache)
	catalog := NewCatalogHandler(deps.Scheduler, deps.Cache)
	search := NewSearchHandler(deps.Scheduler, deps.Cache)
	rooms := NewRoomHandler(deps.Scheduler)

	api.POST("/schedule", schedule.Schedule)
	api.GET("/schedule", schedule.All)
	api.GET("/schedule/day/:day", schedule.ByDay)

	api.GET("/autocomplete/courses", search.Courses)
	api.GET("/autocomplete/rooms", search.Rooms)

	api.GET("/rooms/available", rooms.Available)
	api.GET("/rooms/allocation-preview", rooms.AllocationPreview)

	api.GET("/courses", catalog.ListCourses)
	api.POST("/courses", catalog.CreateCourse)
	api.GET("/professors", catalog.ListProfessors)
	api.POST("/professors", catalog.CreateProfessor)
	api.GET("/rooms", catalog.ListRooms)
	api.POST("/rooms", catalog.CreateRoom)
	api.GET("/time-slots", catalog.ListTimeSlots)
	api.POST("/time-slots", catalog.CreateTimeSlot)

	if deps.Exports != nil {
		exports := NewExportHandler(deps.Exports)
		api.GET("/timetable/export", exports.Timetable)
	}

	if deps.Snapshots != nil {
		snapshots := NewSnapshotHandler(deps.Snapshots, deps.Cache)
		api.POST("/snapshots", snapshots.Save)
		api.POST("/snapshots/restore", snapshots.Restore)
	}
}
