package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"majlis/internal/service"
)

// AnalyticsHandler handles dashboard statistics endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard handles GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// Trends handles GET /api/v1/analytics/trends
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	trends, err := h.analyticsService.AttendanceTrends(c.Request.Context(), userID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, trends)
}

// GroupPerformance handles GET /api/v1/analytics/groups
func (h *AnalyticsHandler) GroupPerformance(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	performance, err := h.analyticsService.GroupPerformance(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, performance)
}

// Rankings handles GET /api/v1/analytics/rankings. It returns the most and
// least active members side by side.
func (h *AnalyticsHandler) Rankings(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	most, err := h.analyticsService.MostActiveMembers(c.Request.Context(), userID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	least, err := h.analyticsService.LeastActiveMembers(c.Request.Context(), userID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"most_active":  most,
		"least_active": least,
	})
}
