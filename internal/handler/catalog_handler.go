package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// CatalogHandler manages the reference-entity endpoints: courses,
// professors, rooms, and time slots.
type CatalogHandler struct {
	scheduler *service.SchedulingService
	cache     *service.CacheService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(scheduler *service.SchedulingService, cache *service.CacheService) *CatalogHandler {
	return &CatalogHandler{scheduler: scheduler, cache: cache}
}

// ListCourses godoc
// @Summary List courses
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.scheduler.ListCourses())
}

// CreateCourse godoc
// @Summary Add a course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.scheduler.AddCourse(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	_ = h.cache.Invalidate(c.Request.Context(), "autocomplete:courses:*")
	response.Created(c, course)
}

// ListProfessors godoc
// @Summary List professors
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /professors [get]
func (h *CatalogHandler) ListProfessors(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.scheduler.ListProfessors())
}

// CreateProfessor godoc
// @Summary Add a professor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Router /professors [post]
func (h *CatalogHandler) CreateProfessor(c *gin.Context) {
	var req service.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	professor, err := h.scheduler.AddProfessor(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// ListRooms godoc
// @Summary List rooms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.scheduler.ListRooms())
}

// CreateRoom godoc
// @Summary Add a room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateRoomRequest true "Room payload"
// @Success 201 {object} response.Envelope
// @Router /rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.scheduler.AddRoom(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	_ = h.cache.Invalidate(c.Request.Context(), "autocomplete:rooms:*")
	response.Created(c, room)
}

// ListTimeSlots godoc
// @Summary List time slots
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /time-slots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.scheduler.ListTimeSlots())
}

// CreateTimeSlot godoc
// @Summary Add a time slot
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateTimeSlotRequest true "Time slot payload"
// @Success 201 {object} response.Envelope
// @Router /time-slots [post]
func (h *CatalogHandler) CreateTimeSlot(c *gin.Context) {
	var req service.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slot, err := h.scheduler.AddTimeSlot(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slot)
}
