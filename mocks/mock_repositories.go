package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"majlis/internal/domain"
)

// MockUserRepo is a mock implementation of port.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockMemberRepo is a mock implementation of port.MemberRepository.
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, userID, memberID uuid.UUID) (*domain.Member, error) {
	args := m.Called(ctx, userID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, userID, memberID uuid.UUID) error {
	args := m.Called(ctx, userID, memberID)
	return args.Error(0)
}

// MockGroupRepo is a mock implementation of port.GroupRepository.
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepo) GetByID(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error) {
	args := m.Called(ctx, userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepo) Update(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepo) Delete(ctx context.Context, userID, groupID uuid.UUID) error {
	args := m.Called(ctx, userID, groupID)
	return args.Error(0)
}

func (m *MockGroupRepo) ListMembers(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Member, error) {
	args := m.Called(ctx, userID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockGroupRepo) SetMembers(ctx context.Context, userID, groupID uuid.UUID, memberIDs []uuid.UUID) error {
	args := m.Called(ctx, userID, groupID, memberIDs)
	return args.Error(0)
}

func (m *MockGroupRepo) AddMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	args := m.Called(ctx, userID, groupID, memberID)
	return args.Error(0)
}

func (m *MockGroupRepo) RemoveMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	args := m.Called(ctx, userID, groupID, memberID)
	return args.Error(0)
}

// MockOccasionRepo is a mock implementation of port.OccasionRepository.
type MockOccasionRepo struct {
	mock.Mock
}

func (m *MockOccasionRepo) Create(ctx context.Context, occasion *domain.Occasion) error {
	args := m.Called(ctx, occasion)
	return args.Error(0)
}

func (m *MockOccasionRepo) GetByID(ctx context.Context, userID, occasionID uuid.UUID) (*domain.Occasion, error) {
	args := m.Called(ctx, userID, occasionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Occasion), args.Error(1)
}

func (m *MockOccasionRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Occasion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Occasion), args.Error(1)
}

func (m *MockOccasionRepo) Update(ctx context.Context, occasion *domain.Occasion) error {
	args := m.Called(ctx, occasion)
	return args.Error(0)
}

func (m *MockOccasionRepo) Delete(ctx context.Context, userID, occasionID uuid.UUID) error {
	args := m.Called(ctx, userID, occasionID)
	return args.Error(0)
}

// MockAttendanceRepo is a mock implementation of port.AttendanceRepository.
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Mark(ctx context.Context, record *domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepo) ListByOccasion(ctx context.Context, userID, occasionID uuid.UUID) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, occasionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepo) ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepo) MemberStats(ctx context.Context, userID, memberID uuid.UUID) (*domain.MemberAttendanceStats, error) {
	args := m.Called(ctx, userID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberAttendanceStats), args.Error(1)
}

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAnalyticsRepo) AttendanceTrends(ctx context.Context, userID uuid.UUID, limit int) ([]domain.OccasionTrend, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OccasionTrend), args.Error(1)
}

func (m *MockAnalyticsRepo) GroupPerformance(ctx context.Context, userID uuid.UUID) ([]domain.GroupPerformance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupPerformance), args.Error(1)
}

func (m *MockAnalyticsRepo) MostActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberActivity), args.Error(1)
}

func (m *MockAnalyticsRepo) LeastActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberActivity), args.Error(1)
}
