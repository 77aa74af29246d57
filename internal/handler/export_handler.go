package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Timetable godoc
// @Summary Download the timetable as CSV or PDF
// @Tags Export
// @Produce octet-stream
// @Param format query string false "csv or pdf, default csv"
// @Param day query string false "Limit to one weekday"
// @Success 200 {file} binary
// @Router /timetable/export [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	day := c.Query("day")
	format := strings.ToLower(c.DefaultQuery("format", "csv"))

	var (
		raw         []byte
		err         error
		contentType string
		extension   string
	)
	switch format {
	case "csv":
		raw, err = h.exports.TimetableCSV(day)
		contentType = "text/csv"
		extension = "csv"
	case "pdf":
		raw, err = h.exports.TimetablePDF(day)
		contentType = "application/pdf"
		extension = "pdf"
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("timetable-%s.%s", time.Now().UTC().Format("20060102"), extension)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, raw)
}
