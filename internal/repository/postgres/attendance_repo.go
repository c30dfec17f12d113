package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"majlis/internal/domain"
	"majlis/internal/port"
)

type attendanceRepo struct {
	db *sqlx.DB
}

// NewAttendanceRepo creates a new PostgreSQL-backed AttendanceRepository.
func NewAttendanceRepo(db *sqlx.DB) port.AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Mark(ctx context.Context, record *domain.AttendanceRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.MarkedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance (id, member_id, occasion_id, is_present, marked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (member_id, occasion_id)
		DO UPDATE SET is_present = EXCLUDED.is_present, marked_at = EXCLUDED.marked_at`,
		record.ID, record.MemberID, record.OccasionID, record.IsPresent, record.MarkedAt)
	if err != nil {
		return fmt.Errorf("attendanceRepo.Mark: %w", err)
	}
	return nil
}

func (r *attendanceRepo) ListByOccasion(ctx context.Context, userID, occasionID uuid.UUID) ([]domain.AttendanceRecord, error) {
	records := []domain.AttendanceRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT a.* FROM attendance a
		 INNER JOIN occasions o ON o.id = a.occasion_id
		 WHERE a.occasion_id = $1 AND o.user_id = $2`,
		occasionID, userID)
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.ListByOccasion: %w", err)
	}
	return records, nil
}

func (r *attendanceRepo) ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]domain.AttendanceRecord, error) {
	records := []domain.AttendanceRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT a.* FROM attendance a
		 INNER JOIN members m ON m.id = a.member_id
		 WHERE a.member_id = $1 AND m.user_id = $2
		 ORDER BY a.marked_at DESC`,
		memberID, userID)
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.ListByMember: %w", err)
	}
	return records, nil
}

func (r *attendanceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AttendanceRecord, error) {
	records := []domain.AttendanceRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT a.* FROM attendance a
		 INNER JOIN occasions o ON o.id = a.occasion_id
		 WHERE o.user_id = $1`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.ListByUser: %w", err)
	}
	return records, nil
}

// MemberStats counts presences against ALL of the user's occasions, not
// just marked rows: an occasion with no record for the member is an absence.
func (r *attendanceRepo) MemberStats(ctx context.Context, userID, memberID uuid.UUID) (*domain.MemberAttendanceStats, error) {
	var stats domain.MemberAttendanceStats

	err := r.db.GetContext(ctx, &stats.Total,
		"SELECT COUNT(*) FROM occasions WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.MemberStats occasions: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.Attended,
		`SELECT COUNT(*) FROM attendance a
		 INNER JOIN occasions o ON o.id = a.occasion_id
		 WHERE a.member_id = $1 AND o.user_id = $2 AND a.is_present`,
		memberID, userID)
	if err != nil {
		return nil, fmt.Errorf("attendanceRepo.MemberStats attended: %w", err)
	}

	stats.Percentage = roundPercent(stats.Attended, stats.Total)
	return &stats, nil
}

// roundPercent matches round(n/total*100) with a zero guard.
func roundPercent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return (n*100 + total/2) / total
}
