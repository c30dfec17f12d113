package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"majlis/internal/domain"
	"majlis/internal/service"
)

// UploadHandler handles the /s3-upload endpoint. Its wire format predates
// the APIResponse envelope and is kept exactly as deployed clients expect:
// bare JSON objects with an "error" string on failure.
type UploadHandler struct {
	authService   service.AuthService
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(authService service.AuthService, uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{
		authService:   authService,
		uploadService: uploadService,
	}
}

// corsHeaders sets the permissive CORS headers this endpoint has always sent.
func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// Options handles OPTIONS /s3-upload preflight requests.
func (h *UploadHandler) Options(c *gin.Context) {
	corsHeaders(c)
	c.String(http.StatusOK, "ok")
}

// Presign handles POST /s3-upload. It authenticates the bearer token itself
// rather than through shared middleware so the legacy error bodies are
// preserved byte for byte.
func (h *UploadHandler) Presign(c *gin.Context) {
	corsHeaders(c)

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization header"})
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// A body that fails to parse is an unexpected error in this contract,
	// surfaced with the parse message; only parsed-but-incomplete bodies
	// get the 400 below.
	var intent service.UploadIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	presigned, err := h.uploadService.PresignUpload(claims.UserID, intent)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingUploadField):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fileName or contentType"})
		case errors.Is(err, domain.ErrInvalidFileType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only images are allowed."})
		case errors.Is(err, domain.ErrServerConfig):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate upload URL"})
		}
		return
	}

	c.JSON(http.StatusOK, presigned)
}
