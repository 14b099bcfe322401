package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

func babyRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "name", "birth_date", "gestational_weeks", "gender",
		"profile_image", "created_at", "updated_at",
	})
}

func TestGetBaby(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	babyID := uuid.New()
	userID := uuid.New()
	birth := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery("FROM babies").
		WithArgs(babyID).
		WillReturnRows(babyRows().AddRow(
			babyID, userID, "Dami", birth, (*int)(nil), "F", (*string)(nil), now, now,
		))

	baby, err := NewBabyStore(mock).GetBaby(context.Background(), babyID)
	require.NoError(t, err)
	assert.Equal(t, "Dami", baby.Name)
	assert.Equal(t, userID, baby.UserID)
	assert.Nil(t, baby.GestationalWeeks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBabyNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	babyID := uuid.New()
	mock.ExpectQuery("FROM babies").
		WithArgs(babyID).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewBabyStore(mock).GetBaby(context.Background(), babyID)
	assert.ErrorIs(t, err, apperr.ErrBabyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBaby(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	weeks := 38
	baby := &models.Baby{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Name:             "Dami",
		BirthDate:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		GestationalWeeks: &weeks,
		Gender:           "F",
	}

	mock.ExpectExec("INSERT INTO babies").
		WithArgs(baby.ID, baby.UserID, baby.Name, baby.BirthDate,
			baby.GestationalWeeks, baby.Gender, baby.ProfileImage).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewBabyStore(mock).Create(context.Background(), baby))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBabyNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	babyID := uuid.New()
	mock.ExpectExec("DELETE FROM babies").
		WithArgs(babyID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = NewBabyStore(mock).Delete(context.Background(), babyID)
	assert.ErrorIs(t, err, apperr.ErrBabyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
