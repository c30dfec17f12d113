package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"majlis/internal/domain"
	"majlis/internal/port"
)

type groupRepo struct {
	db *sqlx.DB
}

// NewGroupRepo creates a new PostgreSQL-backed GroupRepository.
func NewGroupRepo(db *sqlx.DB) port.GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, group *domain.Group) error {
	group.ID = uuid.New()
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (id, user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		group.ID, group.UserID, group.Name, group.Description,
		group.CreatedAt, group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("groupRepo.Create: %w", err)
	}
	return nil
}

func (r *groupRepo) GetByID(ctx context.Context, userID, groupID uuid.UUID) (*domain.Group, error) {
	var group domain.Group
	err := r.db.GetContext(ctx, &group,
		"SELECT * FROM groups WHERE id = $1 AND user_id = $2", groupID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("groupRepo.GetByID: %w", err)
	}
	return &group, nil
}

func (r *groupRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	groups := []domain.Group{}
	err := r.db.SelectContext(ctx, &groups,
		"SELECT * FROM groups WHERE user_id = $1 ORDER BY name", userID)
	if err != nil {
		return nil, fmt.Errorf("groupRepo.List: %w", err)
	}
	return groups, nil
}

func (r *groupRepo) Update(ctx context.Context, group *domain.Group) error {
	group.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE groups SET name = $1, description = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`,
		group.Name, group.Description, group.UpdatedAt, group.ID, group.UserID)
	if err != nil {
		return fmt.Errorf("groupRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *groupRepo) Delete(ctx context.Context, userID, groupID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM groups WHERE id = $1 AND user_id = $2", groupID, userID)
	if err != nil {
		return fmt.Errorf("groupRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *groupRepo) ListMembers(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Member, error) {
	members := []domain.Member{}
	err := r.db.SelectContext(ctx, &members,
		`SELECT m.* FROM members m
		 INNER JOIN group_members gm ON gm.member_id = m.id
		 INNER JOIN groups g ON g.id = gm.group_id
		 WHERE gm.group_id = $1 AND g.user_id = $2
		 ORDER BY m.name, m.surname`,
		groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("groupRepo.ListMembers: %w", err)
	}
	return members, nil
}

// SetMembers replaces the group's membership with exactly memberIDs, in one
// transaction so a failed insert never leaves the group half-emptied.
func (r *groupRepo) SetMembers(ctx context.Context, userID, groupID uuid.UUID, memberIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("groupRepo.SetMembers begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var owned int
	if err := tx.GetContext(ctx, &owned,
		"SELECT COUNT(*) FROM groups WHERE id = $1 AND user_id = $2", groupID, userID); err != nil {
		return fmt.Errorf("groupRepo.SetMembers ownership: %w", err)
	}
	if owned == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM group_members WHERE group_id = $1", groupID); err != nil {
		return fmt.Errorf("groupRepo.SetMembers clear: %w", err)
	}

	for _, memberID := range memberIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO group_members (group_id, member_id, added_at) VALUES ($1, $2, NOW())",
			groupID, memberID); err != nil {
			return fmt.Errorf("groupRepo.SetMembers insert: %w", err)
		}
	}

	return tx.Commit()
}

func (r *groupRepo) AddMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO group_members (group_id, member_id, added_at)
		 SELECT g.id, $2, NOW() FROM groups g WHERE g.id = $1 AND g.user_id = $3
		 ON CONFLICT (group_id, member_id) DO NOTHING`,
		groupID, memberID, userID)
	if err != nil {
		return fmt.Errorf("groupRepo.AddMember: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Either the group isn't owned by this user or the member is
		// already in it; distinguish for a useful error.
		var owned int
		if err := r.db.GetContext(ctx, &owned,
			"SELECT COUNT(*) FROM groups WHERE id = $1 AND user_id = $2", groupID, userID); err != nil {
			return fmt.Errorf("groupRepo.AddMember ownership: %w", err)
		}
		if owned == 0 {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *groupRepo) RemoveMember(ctx context.Context, userID, groupID, memberID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members gm
		 USING groups g
		 WHERE gm.group_id = g.id AND gm.group_id = $1 AND gm.member_id = $2 AND g.user_id = $3`,
		groupID, memberID, userID)
	if err != nil {
		return fmt.Errorf("groupRepo.RemoveMember: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
