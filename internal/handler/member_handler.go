package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majlis/internal/service"
)

// MemberHandler handles member management endpoints.
type MemberHandler struct {
	memberService service.MemberService
	photoService  service.PhotoService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService, photoService service.PhotoService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		photoService:  photoService,
	}
}

// Create handles POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input service.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, member)
}

// List handles GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	members, err := h.memberService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, members)
}

// GetByID handles GET /api/v1/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), userID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, member)
}

// Update handles PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	var input service.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), userID, memberID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, member)
}

// Delete handles DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), userID, memberID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "member deleted"})
}

// PhotoURL handles GET /api/v1/members/:id/photo. It returns a presigned GET
// URL so the photo stays readable when the bucket is private.
func (h *MemberHandler) PhotoURL(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	url, err := h.memberService.PhotoURL(c.Request.Context(), userID, memberID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// UploadPhoto handles POST /api/v1/members/:id/photo, the server-side
// multipart fallback for clients that cannot use presigned uploads.
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing photo file")
		return
	}
	defer file.Close()

	member, err := h.photoService.Upload(c.Request.Context(), service.PhotoUploadInput{
		UserID:   userID,
		MemberID: memberID,
		File:     file,
		Header:   header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, member)
}
