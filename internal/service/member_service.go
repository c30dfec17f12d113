package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"majlis/internal/config"
	"majlis/internal/domain"
	"majlis/internal/port"
)

// MemberInput is the DTO for creating and updating members.
type MemberInput struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	HouseColor   string `json:"house_color" binding:"required"`
	Address      string `json:"address"`
	ITSNumber    string `json:"its_number"`
	MobileNumber string `json:"mobile_number"`
	Grade        string `json:"grade"`
	Class        string `json:"class"`
	ProfilePhoto string `json:"profile_photo"`
	IsActive     *bool  `json:"is_active"`
}

// MemberService manages community members.
type MemberService interface {
	Create(ctx context.Context, userID uuid.UUID, input MemberInput) (*domain.Member, error)
	Get(ctx context.Context, userID, memberID uuid.UUID) (*domain.Member, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Member, error)
	Update(ctx context.Context, userID, memberID uuid.UUID, input MemberInput) (*domain.Member, error)
	Delete(ctx context.Context, userID, memberID uuid.UUID) error
	PhotoURL(ctx context.Context, userID, memberID uuid.UUID) (string, error)
}

type memberService struct {
	memberRepo port.MemberRepository
	storage    port.ObjectStorage
	s3cfg      config.S3Config
}

// NewMemberService creates a new MemberService implementation. storage may
// be nil when object storage is not configured; photo cleanup is skipped.
func NewMemberService(memberRepo port.MemberRepository, storage port.ObjectStorage, s3cfg config.S3Config) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		storage:    storage,
		s3cfg:      s3cfg,
	}
}

func (s *memberService) Create(ctx context.Context, userID uuid.UUID, input MemberInput) (*domain.Member, error) {
	if !domain.HouseColors[domain.HouseColor(input.HouseColor)] {
		return nil, domain.ErrInvalidHouseColor
	}

	member := &domain.Member{
		UserID:       userID,
		Name:         input.Name,
		Surname:      input.Surname,
		HouseColor:   domain.HouseColor(input.HouseColor),
		Address:      input.Address,
		ITSNumber:    input.ITSNumber,
		MobileNumber: input.MobileNumber,
		Grade:        input.Grade,
		Class:        input.Class,
		ProfilePhoto: input.ProfilePhoto,
		IsActive:     true,
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) Get(ctx context.Context, userID, memberID uuid.UUID) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, userID, memberID)
}

func (s *memberService) List(ctx context.Context, userID uuid.UUID) ([]domain.Member, error) {
	return s.memberRepo.List(ctx, userID)
}

func (s *memberService) Update(ctx context.Context, userID, memberID uuid.UUID, input MemberInput) (*domain.Member, error) {
	if !domain.HouseColors[domain.HouseColor(input.HouseColor)] {
		return nil, domain.ErrInvalidHouseColor
	}

	member, err := s.memberRepo.GetByID(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	member.Name = input.Name
	member.Surname = input.Surname
	member.HouseColor = domain.HouseColor(input.HouseColor)
	member.Address = input.Address
	member.ITSNumber = input.ITSNumber
	member.MobileNumber = input.MobileNumber
	member.Grade = input.Grade
	member.Class = input.Class
	member.ProfilePhoto = input.ProfilePhoto
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the member and, best effort, their profile photo from
// object storage. A failed photo delete only logs; the row is already gone.
func (s *memberService) Delete(ctx context.Context, userID, memberID uuid.UUID) error {
	member, err := s.memberRepo.GetByID(ctx, userID, memberID)
	if err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, userID, memberID); err != nil {
		return err
	}

	if s.storage != nil && member.ProfilePhoto != "" {
		if key := s.photoKey(member.ProfilePhoto); key != "" {
			if err := s.storage.Delete(ctx, s.s3cfg.Bucket, key); err != nil {
				log.Printf("member %s: photo cleanup failed: %v", memberID, err)
			}
		}
	}

	return nil
}

// PhotoURL returns a time-limited presigned GET URL for the member's profile
// photo, so clients can read photos from a private bucket. The expiry matches
// the configured presign bound.
func (s *memberService) PhotoURL(ctx context.Context, userID, memberID uuid.UUID) (string, error) {
	member, err := s.memberRepo.GetByID(ctx, userID, memberID)
	if err != nil {
		return "", err
	}

	key := s.photoKey(member.ProfilePhoto)
	if key == "" {
		return "", domain.ErrNotFound
	}
	if s.storage == nil {
		return "", domain.ErrServerConfig
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("memberService.PhotoURL: %w", err)
	}
	return url, nil
}

// photoKey extracts the object key from a stored photo URL. Only keys under
// profiles/ are eligible for cleanup.
func (s *memberService) photoKey(photoURL string) string {
	i := strings.Index(photoURL, "/profiles/")
	if i < 0 {
		return ""
	}
	return photoURL[i+1:]
}
