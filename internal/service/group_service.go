package service

import (
	"context"

	"github.com/google/uuid"

	"majlis/internal/domain"
	"majlis/internal/port"
)

// GroupInput is the DTO for creating and updating groups.
type GroupInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GroupMembersInput replaces a group's membership wholesale.
type GroupMembersInput struct {
	MemberIDs []uuid.UUID `json:"member_ids" binding:"required"`
}

// GroupService manages groups and their membership.
type GroupService interface {
	Create(ctx context.Context, userID uuid.UUID, input GroupInput) (*domain.Group, error)
	Get(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)
	Update(ctx context.Context, userID, groupID uuid.UUID, input GroupInput) (*domain.Group, error)
	Delete(ctx context.Context, userID, groupID uuid.UUID) error

	ListMembers(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Member, error)
	SetMembers(ctx context.Context, userID, groupID uuid.UUID, memberIDs []uuid.UUID) error
	AddMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error
	RemoveMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error
}

type groupService struct {
	groupRepo port.GroupRepository
}

// NewGroupService creates a new GroupService implementation.
func NewGroupService(groupRepo port.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, userID uuid.UUID, input GroupInput) (*domain.Group, error) {
	group := &domain.Group{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) Get(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error) {
	return s.groupRepo.GetByID(ctx, userID, groupID)
}

func (s *groupService) List(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	return s.groupRepo.List(ctx, userID)
}

func (s *groupService) Update(ctx context.Context, userID, groupID uuid.UUID, input GroupInput) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	group.Name = input.Name
	group.Description = input.Description
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, userID, groupID uuid.UUID) error {
	return s.groupRepo.Delete(ctx, userID, groupID)
}

func (s *groupService) ListMembers(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Member, error) {
	return s.groupRepo.ListMembers(ctx, userID, groupID)
}

func (s *groupService) SetMembers(ctx context.Context, userID, groupID uuid.UUID, memberIDs []uuid.UUID) error {
	return s.groupRepo.SetMembers(ctx, userID, groupID, memberIDs)
}

func (s *groupService) AddMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	return s.groupRepo.AddMember(ctx, userID, groupID, memberID)
}

func (s *groupService) RemoveMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	return s.groupRepo.RemoveMember(ctx, userID, groupID, memberID)
}
