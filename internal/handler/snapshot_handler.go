package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// SnapshotHandler exposes the durable store's load/save hooks.
type SnapshotHandler struct {
	snapshots *service.SnapshotService
	cache     *service.CacheService
}

// NewSnapshotHandler constructs handler.
func NewSnapshotHandler(snapshots *service.SnapshotService, cache *service.CacheService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots, cache: cache}
}

// Save godoc
// @Summary Save the in-memory state to the durable store
// @Tags Snapshots
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /snapshots [post]
func (h *SnapshotHandler) Save(c *gin.Context) {
	snap, err := h.snapshots.Save(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"courses":    len(snap.Courses),
		"professors": len(snap.Professors),
		"rooms":      len(snap.Rooms),
		"time_slots": len(snap.TimeSlots),
		"entries":    len(snap.Entries),
	})
}

// Restore godoc
// @Summary Replace the in-memory state with the last saved snapshot
// @Tags Snapshots
// @Produce json
// @Success 204
// @Router /snapshots/restore [post]
func (h *SnapshotHandler) Restore(c *gin.Context) {
	if err := h.snapshots.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	_ = h.cache.Invalidate(c.Request.Context(), "schedule:*")
	_ = h.cache.Invalidate(c.Request.Context(), "autocomplete:*")
	c.Status(http.StatusNoContent)
}
