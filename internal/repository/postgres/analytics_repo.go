package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"majlis/internal/domain"
	"majlis/internal/port"
)

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

const dashboardStatsQuery = `SELECT
	(SELECT COUNT(*) FROM members WHERE user_id = $1 AND is_active) AS total_members,
	(SELECT COUNT(*) FROM groups WHERE user_id = $1) AS total_groups,
	(SELECT COUNT(*) FROM occasions WHERE user_id = $1) AS total_occasions`

func (r *analyticsRepo) DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardStatsQuery, userID); err != nil {
		return nil, fmt.Errorf("analyticsRepo.DashboardStats: %w", err)
	}
	return &stats, nil
}

const attendanceTrendsQuery = `SELECT
	o.id AS occasion_id,
	o.title,
	o.date,
	COUNT(a.id) AS total,
	COUNT(CASE WHEN a.is_present THEN 1 END) AS present
FROM occasions o
LEFT JOIN attendance a ON a.occasion_id = o.id
WHERE o.user_id = $1
GROUP BY o.id, o.title, o.date
ORDER BY o.date DESC
LIMIT $2`

// AttendanceTrends returns per-occasion attendance for the most recent
// occasions, oldest first so the caller can chart left to right.
func (r *analyticsRepo) AttendanceTrends(ctx context.Context, userID uuid.UUID, limit int) ([]domain.OccasionTrend, error) {
	trends := []domain.OccasionTrend{}
	if err := r.db.SelectContext(ctx, &trends, attendanceTrendsQuery, userID, limit); err != nil {
		return nil, fmt.Errorf("analyticsRepo.AttendanceTrends: %w", err)
	}

	for i := range trends {
		t := &trends[i]
		t.Absent = t.Total - t.Present
		t.Percentage = roundPercent(t.Present, t.Total)
	}

	// Query returns newest first; flip for charting.
	for i, j := 0, len(trends)-1; i < j; i, j = i+1, j-1 {
		trends[i], trends[j] = trends[j], trends[i]
	}

	return trends, nil
}

const groupPerformanceQuery = `SELECT
	g.id AS group_id,
	g.name,
	COUNT(DISTINCT gm.member_id) AS member_count,
	COUNT(a.id) AS total,
	COUNT(CASE WHEN a.is_present THEN 1 END) AS present
FROM groups g
LEFT JOIN group_members gm ON gm.group_id = g.id
LEFT JOIN attendance a ON a.member_id = gm.member_id
WHERE g.user_id = $1
GROUP BY g.id, g.name`

func (r *analyticsRepo) GroupPerformance(ctx context.Context, userID uuid.UUID) ([]domain.GroupPerformance, error) {
	rows := []struct {
		GroupID     uuid.UUID `db:"group_id"`
		Name        string    `db:"name"`
		MemberCount int       `db:"member_count"`
		Total       int       `db:"total"`
		Present     int       `db:"present"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, groupPerformanceQuery, userID); err != nil {
		return nil, fmt.Errorf("analyticsRepo.GroupPerformance: %w", err)
	}

	performance := make([]domain.GroupPerformance, 0, len(rows))
	for _, row := range rows {
		performance = append(performance, domain.GroupPerformance{
			GroupID:     row.GroupID,
			Name:        row.Name,
			Attendance:  roundPercent(row.Present, row.Total),
			MemberCount: row.MemberCount,
		})
	}

	// Highest-performing groups first.
	sort.Slice(performance, func(i, j int) bool {
		return performance[i].Attendance > performance[j].Attendance
	})

	return performance, nil
}

const memberActivityQuery = `SELECT
	m.id AS member_id,
	m.name,
	m.surname,
	COUNT(a.id) AS total,
	COUNT(CASE WHEN a.is_present THEN 1 END) AS attended
FROM members m
LEFT JOIN attendance a ON a.member_id = m.id
WHERE m.user_id = $1 AND m.is_active
GROUP BY m.id, m.name, m.surname`

func (r *analyticsRepo) MostActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	activity, err := r.memberActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortActivity(activity, true)
	return clip(activity, limit), nil
}

func (r *analyticsRepo) LeastActiveMembers(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MemberActivity, error) {
	activity, err := r.memberActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortActivity(activity, false)
	return clip(activity, limit), nil
}

func (r *analyticsRepo) memberActivity(ctx context.Context, userID uuid.UUID) ([]domain.MemberActivity, error) {
	activity := []domain.MemberActivity{}
	if err := r.db.SelectContext(ctx, &activity, memberActivityQuery, userID); err != nil {
		return nil, fmt.Errorf("analyticsRepo.memberActivity: %w", err)
	}
	for i := range activity {
		a := &activity[i]
		a.Percentage = roundPercent(a.Attended, a.Total)
	}
	return activity, nil
}

// sortActivity orders by percentage, breaking ties on attended count, in
// the given direction.
func sortActivity(activity []domain.MemberActivity, desc bool) {
	sort.Slice(activity, func(i, j int) bool {
		a, b := activity[i], activity[j]
		if !desc {
			a, b = b, a
		}
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return a.Attended > b.Attended
	})
}

func clip(activity []domain.MemberActivity, limit int) []domain.MemberActivity {
	if limit > 0 && len(activity) > limit {
		return activity[:limit]
	}
	return activity
}
