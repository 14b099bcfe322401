package store

import (
	"context"
	"errors"
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

func TestGetScheduleNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	babyID := uuid.New()
	date := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM daily_schedules").
		WithArgs(babyID, "2026-08-28").
		WillReturnError(pgx.ErrNoRows)

	_, err = NewScheduleStore(mock).GetSchedule(context.Background(), babyID, date)
	assert.ErrorIs(t, err, apperr.ErrScheduleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSchedule(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	scheduleID := uuid.New()
	babyID := uuid.New()
	itemID := uuid.New()
	date := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	tmplIdx := 2
	dur := 60

	mock.ExpectQuery("FROM daily_schedules").
		WithArgs(babyID, "2026-08-28").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "baby_id", "schedule_date", "wake_up_time", "age_in_months", "created_at", "updated_at",
		}).AddRow(scheduleID, babyID, date, 420, 3, now, now))

	mock.ExpectQuery("FROM schedule_items").
		WithArgs(scheduleID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "schedule_id", "activity_type", "scheduled_time", "duration_minutes", "note",
			"template_index", "actual_duration_minutes", "actual_start_time", "feeding_amount_ml",
			"created_at", "updated_at",
		}).AddRow(
			itemID, scheduleID, models.ActivityNap1, 510, &dur, "Nap 1 (1h)",
			&tmplIdx, (*int)(nil), (*int)(nil), (*int)(nil), now, now,
		))

	schedule, err := NewScheduleStore(mock).GetSchedule(context.Background(), babyID, date)
	require.NoError(t, err)

	assert.Equal(t, scheduleID, schedule.ID)
	assert.Equal(t, models.NewTimeOfDay(7, 0), schedule.WakeUpTime)
	assert.Equal(t, 3, schedule.AgeInMonths)
	require.Len(t, schedule.Items, 1)

	item := schedule.Items[0]
	assert.Equal(t, models.ActivityNap1, item.ActivityType)
	assert.Equal(t, models.NewTimeOfDay(8, 30), item.ScheduledTime)
	require.NotNil(t, item.DurationMinutes)
	assert.Equal(t, 60, *item.DurationMinutes)
	require.NotNil(t, item.TemplateIndex)
	assert.Equal(t, 2, *item.TemplateIndex)
	assert.Nil(t, item.ActualStartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func scheduleFixture() *models.DailySchedule {
	scheduleID := uuid.New()
	dur := 60
	tmplIdx := 1
	return &models.DailySchedule{
		ID:           scheduleID,
		BabyID:       uuid.New(),
		ScheduleDate: time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		WakeUpTime:   models.NewTimeOfDay(7, 0),
		AgeInMonths:  3,
		Items: []models.ScheduleItem{
			{
				ID:            uuid.New(),
				ScheduleID:    scheduleID,
				ActivityType:  models.ActivityWakeUp,
				ScheduledTime: models.NewTimeOfDay(7, 0),
			},
			{
				ID:              uuid.New(),
				ScheduleID:      scheduleID,
				ActivityType:    models.ActivityNap1,
				ScheduledTime:   models.NewTimeOfDay(8, 30),
				DurationMinutes: &dur,
				TemplateIndex:   &tmplIdx,
			},
		},
	}
}

func TestReplaceSchedule(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	schedule := scheduleFixture()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM daily_schedules").
		WithArgs(schedule.BabyID, "2026-08-28").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("INSERT INTO daily_schedules").
		WithArgs(schedule.ID, schedule.BabyID, "2026-08-28", 420, 3).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for i := range schedule.Items {
		item := &schedule.Items[i]
		mock.ExpectExec("INSERT INTO schedule_items").
			WithArgs(item.ID, schedule.ID, i, item.ActivityType, item.ScheduledTime.Minutes(),
				item.DurationMinutes, item.Note, item.TemplateIndex,
				item.ActualDurationMinutes, (*int)(nil), item.FeedingAmountMl).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, NewScheduleStore(mock).Replace(context.Background(), schedule))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceScheduleRollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	schedule := scheduleFixture()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM daily_schedules").
		WithArgs(schedule.BabyID, "2026-08-28").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err = NewScheduleStore(mock).Replace(context.Background(), schedule)
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateScheduleNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	schedule := scheduleFixture()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE daily_schedules").
		WithArgs(schedule.ID, 420).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = NewScheduleStore(mock).Update(context.Background(), schedule)
	assert.ErrorIs(t, err, apperr.ErrScheduleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
