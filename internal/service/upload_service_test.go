package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"majlis/internal/config"
	"majlis/internal/domain"
)

var testInstant = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testUploadService() *uploadService {
	return &uploadService{
		cfg: config.S3Config{
			Region:        "us-east-1",
			Bucket:        "majlis-photos",
			AccessKey:     "AKIDEXAMPLE",
			SecretKey:     "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY",
			PresignExpiry: 3600,
		},
		now: func() time.Time { return testInstant },
	}
}

func TestPresignUpload_AllowedImageTypes(t *testing.T) {
	svc := testUploadService()
	userID := uuid.New()

	for contentType := range domain.AllowedImageTypes {
		result, err := svc.PresignUpload(userID, UploadIntent{
			FileName:    "photo.png",
			ContentType: contentType,
		})
		assert.NoError(t, err, contentType)
		assert.NotNil(t, result, contentType)
	}

	for _, contentType := range []string{
		"image/svg+xml", "application/pdf", "text/html", "video/mp4", "image/JPEG",
	} {
		result, err := svc.PresignUpload(userID, UploadIntent{
			FileName:    "photo.png",
			ContentType: contentType,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidFileType, contentType)
		assert.Nil(t, result, contentType)
	}
}

func TestPresignUpload_MissingFields(t *testing.T) {
	svc := testUploadService()
	userID := uuid.New()

	_, err := svc.PresignUpload(userID, UploadIntent{ContentType: "image/png"})
	assert.ErrorIs(t, err, domain.ErrMissingUploadField)

	_, err = svc.PresignUpload(userID, UploadIntent{FileName: "photo.png"})
	assert.ErrorIs(t, err, domain.ErrMissingUploadField)
}

func TestPresignUpload_MissingConfig(t *testing.T) {
	for _, tc := range []struct {
		name  string
		strip func(*config.S3Config)
	}{
		{"access key", func(c *config.S3Config) { c.AccessKey = "" }},
		{"secret key", func(c *config.S3Config) { c.SecretKey = "" }},
		{"region", func(c *config.S3Config) { c.Region = "" }},
		{"bucket", func(c *config.S3Config) { c.Bucket = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc := testUploadService()
			tc.strip(&svc.cfg)

			_, err := svc.PresignUpload(uuid.New(), UploadIntent{
				FileName:    "photo.png",
				ContentType: "image/png",
			})
			assert.ErrorIs(t, err, domain.ErrServerConfig)
		})
	}
}

func TestPresignUpload_URLStructure(t *testing.T) {
	svc := testUploadService()
	userID := uuid.New()

	result, err := svc.PresignUpload(userID, UploadIntent{
		FileName:    "avatar.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	u, err := url.Parse(result.UploadURL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "majlis-photos.s3.us-east-1.amazonaws.com", u.Host)
	assert.Equal(t, "/"+result.Key, u.Path)

	q := u.Query()
	assert.Equal(t, "AWS4-HMAC-SHA256", q.Get("X-Amz-Algorithm"))
	assert.Equal(t, "AKIDEXAMPLE/20240101/us-east-1/s3/aws4_request", q.Get("X-Amz-Credential"))
	assert.Equal(t, "20240101T000000Z", q.Get("X-Amz-Date"))
	assert.Equal(t, "3600", q.Get("X-Amz-Expires"))
	assert.Equal(t, "content-type;host", q.Get("X-Amz-SignedHeaders"))
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), q.Get("X-Amz-Signature"))

	assert.Equal(t, "https://majlis-photos.s3.us-east-1.amazonaws.com/"+result.Key, result.PublicURL)
	assert.NotContains(t, result.UploadURL, svc.cfg.SecretKey)
}

func TestPresignUpload_KeyFormat(t *testing.T) {
	svc := testUploadService()
	userID := uuid.New()

	result, err := svc.PresignUpload(userID, UploadIntent{
		FileName:    "my photo.webp",
		ContentType: "image/webp",
	})
	require.NoError(t, err)

	prefix := fmt.Sprintf("profiles/%s/%d-", userID, testInstant.UnixMilli())
	assert.True(t, strings.HasPrefix(result.Key, prefix), result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".webp"), result.Key)
}

func TestDeriveObjectKey_DefaultExtension(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	key := deriveObjectKey(userID, "noextension", now)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	key = deriveObjectKey(userID, "trailingdot.", now)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	key = deriveObjectKey(userID, "archive.tar.gz", now)
	assert.True(t, strings.HasSuffix(key, ".gz"), key)
}

func TestDeriveObjectKey_Unique(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		key := deriveObjectKey(userID, "photo.png", now)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
