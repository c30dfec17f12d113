package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"majlis/internal/domain"
	"majlis/internal/port"
)

// KalamAssignmentInput assigns one kalam slot to a group.
type KalamAssignmentInput struct {
	KalamType string    `json:"kalam_type" binding:"required"`
	GroupID   uuid.UUID `json:"group_id" binding:"required"`
	KalamName string    `json:"kalam_name"`
}

// OccasionInput is the DTO for creating and updating occasions. The
// assignments carried here replace whatever the occasion had before.
type OccasionInput struct {
	Title            string                 `json:"title" binding:"required"`
	Place            string                 `json:"place"`
	Date             time.Time              `json:"date" binding:"required"`
	StartTime        string                 `json:"start_time"`
	EndTime          string                 `json:"end_time"`
	Notes            string                 `json:"notes"`
	KalamAssignments []KalamAssignmentInput `json:"kalam_assignments"`
}

// OccasionService manages occasions and their kalam assignments.
type OccasionService interface {
	Create(ctx context.Context, userID uuid.UUID, input OccasionInput) (*domain.Occasion, error)
	Get(ctx context.Context, userID, occasionID uuid.UUID) (*domain.Occasion, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Occasion, error)
	Update(ctx context.Context, userID, occasionID uuid.UUID, input OccasionInput) (*domain.Occasion, error)
	Delete(ctx context.Context, userID, occasionID uuid.UUID) error
}

type occasionService struct {
	occasionRepo port.OccasionRepository
}

// NewOccasionService creates a new OccasionService implementation.
func NewOccasionService(occasionRepo port.OccasionRepository) OccasionService {
	return &occasionService{occasionRepo: occasionRepo}
}

func (s *occasionService) Create(ctx context.Context, userID uuid.UUID, input OccasionInput) (*domain.Occasion, error) {
	assignments, err := buildAssignments(input.KalamAssignments)
	if err != nil {
		return nil, err
	}

	occasion := &domain.Occasion{
		UserID:           userID,
		Title:            input.Title,
		Place:            input.Place,
		Date:             input.Date,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Notes:            input.Notes,
		KalamAssignments: assignments,
	}
	if err := s.occasionRepo.Create(ctx, occasion); err != nil {
		return nil, err
	}
	return occasion, nil
}

func (s *occasionService) Get(ctx context.Context, userID, occasionID uuid.UUID) (*domain.Occasion, error) {
	return s.occasionRepo.GetByID(ctx, userID, occasionID)
}

func (s *occasionService) List(ctx context.Context, userID uuid.UUID) ([]domain.Occasion, error) {
	return s.occasionRepo.List(ctx, userID)
}

func (s *occasionService) Update(ctx context.Context, userID, occasionID uuid.UUID, input OccasionInput) (*domain.Occasion, error) {
	assignments, err := buildAssignments(input.KalamAssignments)
	if err != nil {
		return nil, err
	}

	occasion, err := s.occasionRepo.GetByID(ctx, userID, occasionID)
	if err != nil {
		return nil, err
	}

	occasion.Title = input.Title
	occasion.Place = input.Place
	occasion.Date = input.Date
	occasion.StartTime = input.StartTime
	occasion.EndTime = input.EndTime
	occasion.Notes = input.Notes
	occasion.KalamAssignments = assignments

	if err := s.occasionRepo.Update(ctx, occasion); err != nil {
		return nil, err
	}
	return occasion, nil
}

func (s *occasionService) Delete(ctx context.Context, userID, occasionID uuid.UUID) error {
	return s.occasionRepo.Delete(ctx, userID, occasionID)
}

func buildAssignments(inputs []KalamAssignmentInput) ([]domain.KalamAssignment, error) {
	assignments := make([]domain.KalamAssignment, 0, len(inputs))
	for _, in := range inputs {
		if !domain.ValidKalamType(domain.KalamType(in.KalamType)) {
			return nil, domain.ErrInvalidKalamType
		}
		assignments = append(assignments, domain.KalamAssignment{
			KalamType: domain.KalamType(in.KalamType),
			GroupID:   in.GroupID,
			KalamName: in.KalamName,
		})
	}
	return assignments, nil
}
