package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"majlis/internal/domain"
	"majlis/internal/port"
)

type memberRepo struct {
	db *sqlx.DB
}

// NewMemberRepo creates a new PostgreSQL-backed MemberRepository.
func NewMemberRepo(db *sqlx.DB) port.MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *domain.Member) error {
	member.ID = uuid.New()
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `INSERT INTO members (id, user_id, name, surname, house_color, address,
		its_number, mobile_number, grade, class, profile_photo, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.UserID, member.Name, member.Surname, member.HouseColor,
		member.Address, member.ITSNumber, member.MobileNumber, member.Grade,
		member.Class, member.ProfilePhoto, member.IsActive,
		member.CreatedAt, member.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateITSNumber
		}
		return fmt.Errorf("memberRepo.Create: %w", err)
	}
	return nil
}

func (r *memberRepo) GetByID(ctx context.Context, userID, memberID uuid.UUID) (*domain.Member, error) {
	var member domain.Member
	err := r.db.GetContext(ctx, &member,
		"SELECT * FROM members WHERE id = $1 AND user_id = $2", memberID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("memberRepo.GetByID: %w", err)
	}
	return &member, nil
}

func (r *memberRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Member, error) {
	members := []domain.Member{}
	err := r.db.SelectContext(ctx, &members,
		"SELECT * FROM members WHERE user_id = $1 ORDER BY name, surname", userID)
	if err != nil {
		return nil, fmt.Errorf("memberRepo.List: %w", err)
	}
	return members, nil
}

func (r *memberRepo) Update(ctx context.Context, member *domain.Member) error {
	member.UpdatedAt = time.Now().UTC()
	query := `UPDATE members SET name = $1, surname = $2, house_color = $3, address = $4,
		its_number = $5, mobile_number = $6, grade = $7, class = $8, profile_photo = $9,
		is_active = $10, updated_at = $11
		WHERE id = $12 AND user_id = $13`
	result, err := r.db.ExecContext(ctx, query,
		member.Name, member.Surname, member.HouseColor, member.Address,
		member.ITSNumber, member.MobileNumber, member.Grade, member.Class,
		member.ProfilePhoto, member.IsActive, member.UpdatedAt,
		member.ID, member.UserID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateITSNumber
		}
		return fmt.Errorf("memberRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memberRepo) Delete(ctx context.Context, userID, memberID uuid.UUID) error {
	// group_members and attendance rows go with the member via FK cascade.
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM members WHERE id = $1 AND user_id = $2", memberID, userID)
	if err != nil {
		return fmt.Errorf("memberRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
