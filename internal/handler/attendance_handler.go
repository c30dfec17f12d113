package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majlis/internal/service"
)

// AttendanceHandler handles attendance marking and queries.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark handles POST /api/v1/attendance. Marking the same member and
// occasion again overwrites the earlier mark.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input service.MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.attendanceService.Mark(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// ListByOccasion handles GET /api/v1/occasions/:id/attendance
func (h *AttendanceHandler) ListByOccasion(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	occasionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid occasion ID")
		return
	}

	records, err := h.attendanceService.ListByOccasion(c.Request.Context(), userID, occasionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// ListByMember handles GET /api/v1/members/:id/attendance
func (h *AttendanceHandler) ListByMember(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	records, err := h.attendanceService.ListByMember(c.Request.Context(), userID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// MemberStats handles GET /api/v1/members/:id/attendance/stats
func (h *AttendanceHandler) MemberStats(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	stats, err := h.attendanceService.MemberStats(c.Request.Context(), userID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
