package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// RoomHandler serves room availability and allocation previews.
type RoomHandler struct {
	scheduler *service.SchedulingService
}

// NewRoomHandler constructs handler.
func NewRoomHandler(scheduler *service.SchedulingService) *RoomHandler {
	return &RoomHandler{scheduler: scheduler}
}

// Available godoc
// @Summary Rooms free at a time slot, sorted by capacity
// @Tags Rooms
// @Produce json
// @Param timeSlotId query string true "Time slot id"
// @Success 200 {object} response.Envelope
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	rooms := h.scheduler.AvailableRooms(c.Query("timeSlotId"))
	response.JSON(c, http.StatusOK, rooms)
}

// AllocationPreview godoc
// @Summary Preview which room a schedule request would receive
// @Tags Rooms
// @Produce json
// @Param capacity query int true "Required capacity"
// @Param timeSlotId query string true "Time slot id"
// @Param type query string false "Preferred room type"
// @Param optimal query bool false "Target best utilization instead of smallest fit"
// @Success 200 {object} response.Envelope
// @Router /rooms/allocation-preview [get]
func (h *RoomHandler) AllocationPreview(c *gin.Context) {
	capacity, err := strconv.Atoi(c.Query("capacity"))
	if err != nil || capacity < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "capacity must be a non-negative integer"))
		return
	}
	optimal := c.Query("optimal") == "true"

	room, ok := h.scheduler.PreviewAllocation(capacity, c.Query("type"), c.Query("timeSlotId"), optimal)
	if !ok {
		response.Error(c, appErrors.ErrNoRoomAvailable)
		return
	}
	response.JSON(c, http.StatusOK, room)
}
