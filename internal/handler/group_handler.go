package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"majlis/internal/service"
)

// GroupHandler handles group management endpoints.
type GroupHandler struct {
	groupService service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create handles POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var input service.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, group)
}

// List handles GET /api/v1/groups
func (h *GroupHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groups, err := h.groupService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, groups)
}

// GetByID handles GET /api/v1/groups/:id
func (h *GroupHandler) GetByID(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	group, err := h.groupService.Get(c.Request.Context(), userID, groupID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, group)
}

// Update handles PUT /api/v1/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	var input service.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	group, err := h.groupService.Update(c.Request.Context(), userID, groupID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, group)
}

// Delete handles DELETE /api/v1/groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), userID, groupID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "group deleted"})
}

// ListMembers handles GET /api/v1/groups/:id/members
func (h *GroupHandler) ListMembers(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	members, err := h.groupService.ListMembers(c.Request.Context(), userID, groupID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, members)
}

// SetMembers handles PUT /api/v1/groups/:id/members, replacing the group's
// membership wholesale.
func (h *GroupHandler) SetMembers(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}

	var input service.GroupMembersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.groupService.SetMembers(c.Request.Context(), userID, groupID, input.MemberIDs); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "group members updated"})
}

// AddMember handles POST /api/v1/groups/:id/members/:memberId
func (h *GroupHandler) AddMember(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	if err := h.groupService.AddMember(c.Request.Context(), userID, groupID, memberID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "member added to group"})
}

// RemoveMember handles DELETE /api/v1/groups/:id/members/:memberId
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid group ID")
		return
	}
	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid member ID")
		return
	}

	if err := h.groupService.RemoveMember(c.Request.Context(), userID, groupID, memberID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "member removed from group"})
}
