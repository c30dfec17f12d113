package port

import (
	"context"

	"github.com/google/uuid"

	"majlis/internal/domain"
)

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// MemberRepository persists members, scoped to the owning user.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, userID, memberID uuid.UUID) (*domain.Member, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, userID, memberID uuid.UUID) error
}

// GroupRepository persists groups and group membership.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)
	Update(ctx context.Context, group *domain.Group) error
	Delete(ctx context.Context, userID, groupID uuid.UUID) error

	ListMembers(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Member, error)
	SetMembers(ctx context.Context, userID, groupID uuid.UUID, memberIDs []uuid.UUID) error
	AddMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error
	RemoveMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error
}

// OccasionRepository persists occasions with their kalam assignments.
type OccasionRepository interface {
	Create(ctx context.Context, occasion *domain.Occasion) error
	GetByID(ctx context.Context, userID, occasionID uuid.UUID) (*domain.Occasion, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Occasion, error)
	Update(ctx context.Context, occasion *domain.Occasion) error
	Delete(ctx context.Context, userID, occasionID uuid.UUID) error
}

// AttendanceRepository persists attendance marks.
type AttendanceRepository interface {
	// Mark upserts on (member_id, occasion_id); marking twice overwrites.
	Mark(ctx context.Context, record *domain.AttendanceRecord) error
	ListByOccasion(ctx context.Context, userID, occasionID uuid.UUID) ([]domain.AttendanceRecord, error)
	ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]domain.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AttendanceRecord, error)
	MemberStats(ctx context.Context, userID, memberID uuid.UUID) (*domain.MemberAttendanceStats, error)
}

// AnalyticsRepository computes aggregate attendance statistics in SQL.
type AnalyticsRepository interface {
	DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
	AttendanceTrends(ctx context.Context, userID uuid.UUID, limit int) ([]domain.OccasionTrend, error)
	GroupPerformance(ctx context.Context, userID uuid.UUID) ([]domain.GroupPerformance, error)
	MostActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error)
	LeastActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error)
}
