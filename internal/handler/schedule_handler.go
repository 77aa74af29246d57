package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ScheduleRequest identifies the class to place.
type ScheduleRequest struct {
	CourseID    string `json:"course_id" binding:"required"`
	ProfessorID string `json:"professor_id" binding:"required"`
	TimeSlotID  string `json:"time_slot_id" binding:"required"`
}

// ScheduleHandler manages scheduling endpoints.
type ScheduleHandler struct {
	scheduler *service.SchedulingService
	cache     *service.CacheService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(scheduler *service.SchedulingService, cache *service.CacheService) *ScheduleHandler {
	return &ScheduleHandler{scheduler: scheduler, cache: cache}
}

// Schedule godoc
// @Summary Schedule a class
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body ScheduleRequest true "Class to schedule"
// @Success 200 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result := h.scheduler.Schedule(req.CourseID, req.ProfessorID, req.TimeSlotID)
	if result.Success {
		_ = h.cache.Invalidate(c.Request.Context(), "schedule:*")
	}
	response.JSON(c, http.StatusOK, result)
}

// All godoc
// @Summary All scheduled classes in (day, start) order
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) All(c *gin.Context) {
	var cached []models.Entry
	if hit, _ := h.cache.Get(c.Request.Context(), "schedule:all", &cached); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}

	entries := h.scheduler.AllScheduled()
	_ = h.cache.Set(c.Request.Context(), "schedule:all", entries, 0)
	response.JSON(c, http.StatusOK, entries)
}

// ByDay godoc
// @Summary Scheduled classes for one weekday
// @Tags Schedule
// @Produce json
// @Param day path string true "Weekday name, case-insensitive"
// @Success 200 {object} response.Envelope
// @Router /schedule/day/{day} [get]
func (h *ScheduleHandler) ByDay(c *gin.Context) {
	day := c.Param("day")
	key := "schedule:day:" + strings.ToLower(day)

	var cached []models.Entry
	if hit, _ := h.cache.Get(c.Request.Context(), key, &cached); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}

	entries := h.scheduler.ScheduleByDay(day)
	_ = h.cache.Set(c.Request.Context(), key, entries, 0)
	response.JSON(c, http.StatusOK, entries)
}
