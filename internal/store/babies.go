package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// BabyStore persists baby profiles.
type BabyStore struct {
	db DB
}

// NewBabyStore creates a baby store over the given database.
func NewBabyStore(db DB) *BabyStore {
	return &BabyStore{db: db}
}

const babyColumns = `id, user_id, name, birth_date, gestational_weeks, gender, profile_image, created_at, updated_at`

func scanBaby(row pgx.Row) (*models.Baby, error) {
	var baby models.Baby
	err := row.Scan(
		&baby.ID,
		&baby.UserID,
		&baby.Name,
		&baby.BirthDate,
		&baby.GestationalWeeks,
		&baby.Gender,
		&baby.ProfileImage,
		&baby.CreatedAt,
		&baby.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &baby, nil
}

// Create inserts a new baby.
func (s *BabyStore) Create(ctx context.Context, baby *models.Baby) error {
	query := `
		INSERT INTO babies (id, user_id, name, birth_date, gestational_weeks, gender, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := s.db.Exec(ctx, query,
		baby.ID, baby.UserID, baby.Name, baby.BirthDate,
		baby.GestationalWeeks, baby.Gender, baby.ProfileImage,
	)
	if err != nil {
		return fmt.Errorf("failed to create baby: %w", err)
	}
	return nil
}

// GetBaby loads one baby by ID.
func (s *BabyStore) GetBaby(ctx context.Context, babyID uuid.UUID) (*models.Baby, error) {
	query := `SELECT ` + babyColumns + ` FROM babies WHERE id = $1`

	baby, err := scanBaby(s.db.QueryRow(ctx, query, babyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrBabyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baby %s: %w", babyID, err)
	}
	return baby, nil
}

// ListByUser loads all babies registered by one user, oldest first.
func (s *BabyStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Baby, error) {
	query := `SELECT ` + babyColumns + ` FROM babies WHERE user_id = $1 ORDER BY birth_date`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list babies: %w", err)
	}
	defer rows.Close()

	var babies []models.Baby
	for rows.Next() {
		baby, err := scanBaby(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan baby: %w", err)
		}
		babies = append(babies, *baby)
	}
	return babies, rows.Err()
}

// Update rewrites the mutable fields of a baby.
func (s *BabyStore) Update(ctx context.Context, baby *models.Baby) error {
	query := `
		UPDATE babies
		SET name = $2, birth_date = $3, gestational_weeks = $4, gender = $5, profile_image = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, query,
		baby.ID, baby.Name, baby.BirthDate, baby.GestationalWeeks, baby.Gender, baby.ProfileImage,
	)
	if err != nil {
		return fmt.Errorf("failed to update baby %s: %w", baby.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrBabyNotFound
	}
	return nil
}

// Delete removes a baby and, through foreign keys, its schedules.
func (s *BabyStore) Delete(ctx context.Context, babyID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM babies WHERE id = $1`, babyID)
	if err != nil {
		return fmt.Errorf("failed to delete baby %s: %w", babyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrBabyNotFound
	}
	return nil
}
