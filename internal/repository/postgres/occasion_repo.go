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

type occasionRepo struct {
	db *sqlx.DB
}

// NewOccasionRepo creates a new PostgreSQL-backed OccasionRepository.
func NewOccasionRepo(db *sqlx.DB) port.OccasionRepository {
	return &occasionRepo{db: db}
}

func (r *occasionRepo) Create(ctx context.Context, occasion *domain.Occasion) error {
	occasion.ID = uuid.New()
	now := time.Now().UTC()
	occasion.CreatedAt = now
	occasion.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("occasionRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO occasions (id, user_id, title, place, date, start_time, end_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		occasion.ID, occasion.UserID, occasion.Title, occasion.Place, occasion.Date,
		occasion.StartTime, occasion.EndTime, occasion.Notes,
		occasion.CreatedAt, occasion.UpdatedAt)
	if err != nil {
		return fmt.Errorf("occasionRepo.Create: %w", err)
	}

	if err := insertAssignments(ctx, tx, occasion.ID, occasion.KalamAssignments); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *occasionRepo) GetByID(ctx context.Context, userID, occasionID uuid.UUID) (*domain.Occasion, error) {
	var occasion domain.Occasion
	err := r.db.GetContext(ctx, &occasion,
		"SELECT * FROM occasions WHERE id = $1 AND user_id = $2", occasionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("occasionRepo.GetByID: %w", err)
	}

	assignments := []domain.KalamAssignment{}
	err = r.db.SelectContext(ctx, &assignments,
		"SELECT * FROM kalam_assignments WHERE occasion_id = $1 ORDER BY kalam_type", occasionID)
	if err != nil {
		return nil, fmt.Errorf("occasionRepo.GetByID assignments: %w", err)
	}
	occasion.KalamAssignments = assignments

	return &occasion, nil
}

func (r *occasionRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Occasion, error) {
	occasions := []domain.Occasion{}
	err := r.db.SelectContext(ctx, &occasions,
		"SELECT * FROM occasions WHERE user_id = $1 ORDER BY date DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("occasionRepo.List: %w", err)
	}
	if len(occasions) == 0 {
		return occasions, nil
	}

	ids := make([]uuid.UUID, len(occasions))
	for i := range occasions {
		ids[i] = occasions[i].ID
	}

	query, args, err := sqlx.In(
		"SELECT * FROM kalam_assignments WHERE occasion_id IN (?) ORDER BY kalam_type", ids)
	if err != nil {
		return nil, fmt.Errorf("occasionRepo.List assignments in: %w", err)
	}
	assignments := []domain.KalamAssignment{}
	err = r.db.SelectContext(ctx, &assignments, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("occasionRepo.List assignments: %w", err)
	}

	byOccasion := make(map[uuid.UUID][]domain.KalamAssignment, len(occasions))
	for _, a := range assignments {
		byOccasion[a.OccasionID] = append(byOccasion[a.OccasionID], a)
	}
	for i := range occasions {
		occasions[i].KalamAssignments = byOccasion[occasions[i].ID]
	}

	return occasions, nil
}

// Update rewrites the occasion row and replaces its kalam assignments with
// the set carried on the struct, atomically.
func (r *occasionRepo) Update(ctx context.Context, occasion *domain.Occasion) error {
	occasion.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("occasionRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE occasions SET title = $1, place = $2, date = $3, start_time = $4,
		end_time = $5, notes = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`,
		occasion.Title, occasion.Place, occasion.Date, occasion.StartTime,
		occasion.EndTime, occasion.Notes, occasion.UpdatedAt,
		occasion.ID, occasion.UserID)
	if err != nil {
		return fmt.Errorf("occasionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM kalam_assignments WHERE occasion_id = $1", occasion.ID); err != nil {
		return fmt.Errorf("occasionRepo.Update clear assignments: %w", err)
	}
	if err := insertAssignments(ctx, tx, occasion.ID, occasion.KalamAssignments); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *occasionRepo) Delete(ctx context.Context, userID, occasionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM occasions WHERE id = $1 AND user_id = $2", occasionID, userID)
	if err != nil {
		return fmt.Errorf("occasionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertAssignments(ctx context.Context, tx *sqlx.Tx, occasionID uuid.UUID, assignments []domain.KalamAssignment) error {
	for i := range assignments {
		a := &assignments[i]
		a.ID = uuid.New()
		a.OccasionID = occasionID
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kalam_assignments (id, occasion_id, kalam_type, group_id, kalam_name)
			VALUES ($1, $2, $3, $4, $5)`,
			a.ID, a.OccasionID, a.KalamType, a.GroupID, a.KalamName); err != nil {
			return fmt.Errorf("occasionRepo assignments insert: %w", err)
		}
	}
	return nil
}
