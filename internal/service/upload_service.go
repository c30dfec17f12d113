package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"majlis/internal/config"
	"majlis/internal/domain"
	"majlis/internal/storage/sigv4"
)

// UploadIntent is what the browser sends when it wants to upload a photo.
type UploadIntent struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// PresignedUpload is everything the browser needs to PUT the file straight
// to the bucket and to reference it afterwards.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// UploadService turns upload intents into presigned PUT URLs. The file body
// never passes through this server.
type UploadService interface {
	PresignUpload(userID uuid.UUID, intent UploadIntent) (*PresignedUpload, error)
}

type uploadService struct {
	cfg config.S3Config
	now func() time.Time
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(cfg config.S3Config) UploadService {
	return &uploadService{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *uploadService) PresignUpload(userID uuid.UUID, intent UploadIntent) (*PresignedUpload, error) {
	if intent.FileName == "" || intent.ContentType == "" {
		return nil, domain.ErrMissingUploadField
	}
	if !domain.AllowedImageTypes[intent.ContentType] {
		return nil, domain.ErrInvalidFileType
	}
	if s.cfg.AccessKey == "" || s.cfg.SecretKey == "" || s.cfg.Region == "" || s.cfg.Bucket == "" {
		return nil, domain.ErrServerConfig
	}

	now := s.now().UTC()
	key := deriveObjectKey(userID, intent.FileName, now)

	target := sigv4.Target{
		Bucket:    s.cfg.Bucket,
		Region:    s.cfg.Region,
		ObjectKey: key,
	}
	creds := sigv4.Credentials{
		AccessKeyID:     s.cfg.AccessKey,
		SecretAccessKey: s.cfg.SecretKey,
	}
	uploadURL := sigv4.Presign(creds, target, sigv4.Request{
		ContentType: intent.ContentType,
		Expires:     s.cfg.PresignExpiry,
	}, now)

	return &PresignedUpload{
		UploadURL: uploadURL,
		PublicURL: sigv4.PublicURL(target),
		Key:       key,
	}, nil
}

// deriveObjectKey builds profiles/{userID}/{millis}-{uuid}.{ext}. The
// extension comes from the file name; files without one get "jpg".
func deriveObjectKey(userID uuid.UUID, fileName string, now time.Time) string {
	ext := "jpg"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = fileName[i+1:]
	}
	return fmt.Sprintf("profiles/%s/%d-%s.%s", userID, now.UnixMilli(), uuid.New(), ext)
}
