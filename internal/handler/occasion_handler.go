package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majlis/internal/service"
)

// OccasionHandler handles occasion management endpoints.
type OccasionHandler struct {
	occasionService service.OccasionService
}

// NewOccasionHandler creates a new OccasionHandler.
func NewOccasionHandler(occasionService service.OccasionService) *OccasionHandler {
	return &OccasionHandler{occasionService: occasionService}
}

// Create handles POST /api/v1/occasions
func (h *OccasionHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input service.OccasionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	occasion, err := h.occasionService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, occasion)
}

// List handles GET /api/v1/occasions
func (h *OccasionHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	occasions, err := h.occasionService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, occasions)
}

// GetByID handles GET /api/v1/occasions/:id
func (h *OccasionHandler) GetByID(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	occasionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid occasion ID")
		return
	}

	occasion, err := h.occasionService.Get(c.Request.Context(), userID, occasionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, occasion)
}

// Update handles PUT /api/v1/occasions/:id
func (h *OccasionHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	occasionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid occasion ID")
		return
	}

	var input service.OccasionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	occasion, err := h.occasionService.Update(c.Request.Context(), userID, occasionID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, occasion)
}

// Delete handles DELETE /api/v1/occasions/:id
func (h *OccasionHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	occasionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid occasion ID")
		return
	}

	if err := h.occasionService.Delete(c.Request.Context(), userID, occasionID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "occasion deleted"})
}
