package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"majlis/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report download endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// AttendanceRegister handles GET /api/v1/reports/attendance. The workbook
// is buffered so a mid-render failure still returns a clean JSON error.
func (h *ReportHandler) AttendanceRegister(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	filename, err := h.reportService.WriteAttendanceRegister(c.Request.Context(), userID, &buf)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
