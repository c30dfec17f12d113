package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"majlis/internal/config"
	"majlis/internal/domain"
	"majlis/internal/handler"
	"majlis/internal/service"
	"majlis/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "majlis-test",
	}
}

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		AccessKey:     "AKIDEXAMPLE",
		SecretKey:     "test-secret-key",
		PresignExpiry: 3600,
	}
}

// uploadTestRouter wires the /s3-upload routes with a real auth service so
// token validation takes the production path. Returns a valid access token.
func uploadTestRouter(t *testing.T, s3cfg config.S3Config) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	authSvc := service.NewAuthService(userRepo, testJWTConfig())
	tokens, err := authSvc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	uploadSvc := service.NewUploadService(s3cfg)
	h := handler.NewUploadHandler(authSvc, uploadSvc)

	r := gin.New()
	r.POST("/s3-upload", h.Presign)
	r.OPTIONS("/s3-upload", h.Options)
	return r, tokens.AccessToken
}

func postUpload(r *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/s3-upload", &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestS3Upload_Options(t *testing.T) {
	r, _ := uploadTestRouter(t, testS3Config())

	req := httptest.NewRequest(http.MethodOptions, "/s3-upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type",
		w.Header().Get("Access-Control-Allow-Headers"))
}

func TestS3Upload_NoAuthorizationHeader(t *testing.T) {
	r, _ := uploadTestRouter(t, testS3Config())

	w := postUpload(r, "", service.UploadIntent{FileName: "a.png", ContentType: "image/png"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "No authorization header"}`, w.Body.String())
}

func TestS3Upload_InvalidToken(t *testing.T) {
	r, _ := uploadTestRouter(t, testS3Config())

	w := postUpload(r, "not-a-jwt", service.UploadIntent{FileName: "a.png", ContentType: "image/png"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
}

func TestS3Upload_MissingFields(t *testing.T) {
	r, token := uploadTestRouter(t, testS3Config())

	for _, body := range []service.UploadIntent{
		{ContentType: "image/png"},
		{FileName: "a.png"},
		{},
	} {
		w := postUpload(r, token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "Missing fileName or contentType"}`, w.Body.String())
	}
}

func TestS3Upload_MalformedBody(t *testing.T) {
	r, token := uploadTestRouter(t, testS3Config())

	req := httptest.NewRequest(http.MethodPost, "/s3-upload", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotEqual(t, "Missing fileName or contentType", resp["error"])
}

func TestS3Upload_InvalidFileType(t *testing.T) {
	r, token := uploadTestRouter(t, testS3Config())

	w := postUpload(r, token, service.UploadIntent{FileName: "doc.pdf", ContentType: "application/pdf"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid file type. Only images are allowed."}`, w.Body.String())
}

func TestS3Upload_MissingServerConfig(t *testing.T) {
	cfg := testS3Config()
	cfg.SecretKey = ""
	r, token := uploadTestRouter(t, cfg)

	w := postUpload(r, token, service.UploadIntent{FileName: "a.png", ContentType: "image/png"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Server configuration error"}`, w.Body.String())
}

func TestS3Upload_Success(t *testing.T) {
	r, token := uploadTestRouter(t, testS3Config())

	w := postUpload(r, token, service.UploadIntent{FileName: "avatar.png", ContentType: "image/png"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var resp service.PresignedUpload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.UploadURL, "https://test-bucket.s3.us-east-1.amazonaws.com/profiles/")
	assert.Contains(t, resp.UploadURL, "X-Amz-Signature=")
	assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/"+resp.Key, resp.PublicURL)
	assert.Contains(t, resp.Key, "profiles/")
}
