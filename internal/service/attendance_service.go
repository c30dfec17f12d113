package service

import (
	"context"

	"github.com/google/uuid"

	"majlis/internal/domain"
	"majlis/internal/port"
)

// MarkAttendanceInput marks one member's attendance for an occasion.
type MarkAttendanceInput struct {
	MemberID   uuid.UUID `json:"member_id" binding:"required"`
	OccasionID uuid.UUID `json:"occasion_id" binding:"required"`
	IsPresent  bool      `json:"is_present"`
}

// AttendanceService records and reads attendance marks.
type AttendanceService interface {
	Mark(ctx context.Context, userID uuid.UUID, input MarkAttendanceInput) (*domain.AttendanceRecord, error)
	ListByOccasion(ctx context.Context, userID, occasionID uuid.UUID) ([]domain.AttendanceRecord, error)
	ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]domain.AttendanceRecord, error)
	MemberStats(ctx context.Context, userID, memberID uuid.UUID) (*domain.MemberAttendanceStats, error)
}

type attendanceService struct {
	attendanceRepo port.AttendanceRepository
	memberRepo     port.MemberRepository
	occasionRepo   port.OccasionRepository
}

// NewAttendanceService creates a new AttendanceService implementation.
func NewAttendanceService(
	attendanceRepo port.AttendanceRepository,
	memberRepo port.MemberRepository,
	occasionRepo port.OccasionRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		occasionRepo:   occasionRepo,
	}
}

// Mark verifies both the member and the occasion belong to the user before
// upserting, so one user can never write marks into another's data.
func (s *attendanceService) Mark(ctx context.Context, userID uuid.UUID, input MarkAttendanceInput) (*domain.AttendanceRecord, error) {
	if _, err := s.memberRepo.GetByID(ctx, userID, input.MemberID); err != nil {
		return nil, err
	}
	if _, err := s.occasionRepo.GetByID(ctx, userID, input.OccasionID); err != nil {
		return nil, err
	}

	record := &domain.AttendanceRecord{
		MemberID:   input.MemberID,
		OccasionID: input.OccasionID,
		IsPresent:  input.IsPresent,
	}
	if err := s.attendanceRepo.Mark(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceService) ListByOccasion(ctx context.Context, userID, occasionID uuid.UUID) ([]domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByOccasion(ctx, userID, occasionID)
}

func (s *attendanceService) ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByMember(ctx, userID, memberID)
}

func (s *attendanceService) MemberStats(ctx context.Context, userID, memberID uuid.UUID) (*domain.MemberAttendanceStats, error) {
	if _, err := s.memberRepo.GetByID(ctx, userID, memberID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.MemberStats(ctx, userID, memberID)
}
