package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// SearchHandler serves auto-completion over course and room strings.
type SearchHandler struct {
	scheduler *service.SchedulingService
	cache     *service.CacheService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(scheduler *service.SchedulingService, cache *service.CacheService) *SearchHandler {
	return &SearchHandler{scheduler: scheduler, cache: cache}
}

// Courses godoc
// @Summary Auto-complete course codes and names
// @Tags Search
// @Produce json
// @Param prefix query string true "Prefix, case-insensitive"
// @Success 200 {object} response.Envelope
// @Router /autocomplete/courses [get]
func (h *SearchHandler) Courses(c *gin.Context) {
	h.complete(c, "autocomplete:courses:", h.scheduler.AutoCompleteCourse)
}

// Rooms godoc
// @Summary Auto-complete room numbers and buildings
// @Tags Search
// @Produce json
// @Param prefix query string true "Prefix, case-insensitive"
// @Success 200 {object} response.Envelope
// @Router /autocomplete/rooms [get]
func (h *SearchHandler) Rooms(c *gin.Context) {
	h.complete(c, "autocomplete:rooms:", h.scheduler.AutoCompleteRoom)
}

func (h *SearchHandler) complete(c *gin.Context, keyPrefix string, lookup func(string) []string) {
	prefix := c.Query("prefix")
	key := keyPrefix + strings.ToUpper(prefix)

	var cached []string
	if hit, _ := h.cache.Get(c.Request.Context(), key, &cached); hit {
		response.JSON(c, http.StatusOK, cached)
		return
	}

	matches := lookup(prefix)
	_ = h.cache.Set(c.Request.Context(), key, matches, 0)
	response.JSON(c, http.StatusOK, matches)
}
