package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"majlis/internal/config"
	"majlis/internal/domain"
	"majlis/internal/port"
	"majlis/internal/storage/sigv4"
)

// PhotoUploadInput is the DTO for server-side profile photo uploads, the
// fallback path for clients that cannot PUT to a presigned URL directly.
type PhotoUploadInput struct {
	UserID   uuid.UUID
	MemberID uuid.UUID
	File     multipart.File
	Header   *multipart.FileHeader
}

// PhotoService uploads profile photos through the server and links them to
// members.
type PhotoService interface {
	Upload(ctx context.Context, input PhotoUploadInput) (*domain.Member, error)
}

type photoService struct {
	memberRepo port.MemberRepository
	storage    port.ObjectStorage
	cfg        config.S3Config
}

// NewPhotoService creates a new PhotoService implementation.
func NewPhotoService(memberRepo port.MemberRepository, storage port.ObjectStorage, cfg config.S3Config) PhotoService {
	return &photoService{
		memberRepo: memberRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *photoService) Upload(ctx context.Context, input PhotoUploadInput) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, input.UserID, input.MemberID)
	if err != nil {
		return nil, err
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type; the client-declared one is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])
	if !domain.AllowedImageTypes[contentType] {
		return nil, domain.ErrInvalidFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	key := deriveObjectKey(input.UserID, input.Header.Filename, time.Now().UTC())

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("photoService.Upload: storage upload failed for member %s: %v", input.MemberID, err)
		return nil, domain.ErrUploadFailed
	}

	member.ProfilePhoto = sigv4.PublicURL(sigv4.Target{
		Bucket:    s.cfg.Bucket,
		Region:    s.cfg.Region,
		ObjectKey: key,
	})
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
