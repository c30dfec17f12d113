package service

import (
	"context"

	"github.com/google/uuid"

	"majlis/internal/domain"
	"majlis/internal/port"
)

const (
	defaultTrendLimit   = 10
	defaultRankingLimit = 5
)

// AnalyticsService exposes aggregate attendance statistics for dashboards.
type AnalyticsService interface {
	DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
	AttendanceTrends(ctx context.Context, userID uuid.UUID, limit int) ([]domain.OccasionTrend, error)
	GroupPerformance(ctx context.Context, userID uuid.UUID) ([]domain.GroupPerformance, error)
	MostActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error)
	LeastActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error)
}

type analyticsService struct {
	analyticsRepo port.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(analyticsRepo port.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	return s.analyticsRepo.DashboardStats(ctx, userID)
}

func (s *analyticsService) AttendanceTrends(ctx context.Context, userID uuid.UUID, limit int) ([]domain.OccasionTrend, error) {
	if limit <= 0 {
		limit = defaultTrendLimit
	}
	return s.analyticsRepo.AttendanceTrends(ctx, userID, limit)
}

func (s *analyticsService) GroupPerformance(ctx context.Context, userID uuid.UUID) ([]domain.GroupPerformance, error) {
	return s.analyticsRepo.GroupPerformance(ctx, userID)
}

func (s *analyticsService) MostActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	if limit <= 0 {
		limit = defaultRankingLimit
	}
	return s.analyticsRepo.MostActiveMembers(ctx, userID, limit)
}

func (s *analyticsService) LeastActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	if limit <= 0 {
		limit = defaultRankingLimit
	}
	return s.analyticsRepo.LeastActiveMembers(ctx, userID, limit)
}
