package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// ScheduleStore persists daily schedules and their items. Times of day are
// stored as integer minutes since midnight.
type ScheduleStore struct {
	db DB
}

// NewScheduleStore creates a schedule store over the given database.
func NewScheduleStore(db DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// GetSchedule loads the schedule for a (baby, date) pair with its items in
// generation order.
func (s *ScheduleStore) GetSchedule(ctx context.Context, babyID uuid.UUID, date time.Time) (*models.DailySchedule, error) {
	query := `
		SELECT id, baby_id, schedule_date, wake_up_time, age_in_months, created_at, updated_at
		FROM daily_schedules
		WHERE baby_id = $1 AND schedule_date = $2
	`

	var schedule models.DailySchedule
	var wakeUp int
	err := s.db.QueryRow(ctx, query, babyID, date.Format("2006-01-02")).Scan(
		&schedule.ID,
		&schedule.BabyID,
		&schedule.ScheduleDate,
		&wakeUp,
		&schedule.AgeInMonths,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule for baby %s on %s: %w", babyID, date.Format("2006-01-02"), err)
	}
	schedule.WakeUpTime = models.TimeOfDay(wakeUp)

	items, err := s.loadItems(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Items = items
	return &schedule, nil
}

func (s *ScheduleStore) loadItems(ctx context.Context, scheduleID uuid.UUID) ([]models.ScheduleItem, error) {
	query := `
		SELECT id, schedule_id, activity_type, scheduled_time, duration_minutes, note,
		       template_index, actual_duration_minutes, actual_start_time, feeding_amount_ml,
		       created_at, updated_at
		FROM schedule_items
		WHERE schedule_id = $1
		ORDER BY position
	`

	rows, err := s.db.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule items: %w", err)
	}
	defer rows.Close()

	var items []models.ScheduleItem
	for rows.Next() {
		var item models.ScheduleItem
		var scheduledTime int
		var actualStart *int
		err := rows.Scan(
			&item.ID,
			&item.ScheduleID,
			&item.ActivityType,
			&scheduledTime,
			&item.DurationMinutes,
			&item.Note,
			&item.TemplateIndex,
			&item.ActualDurationMinutes,
			&actualStart,
			&item.FeedingAmountMl,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule item: %w", err)
		}
		item.ScheduledTime = models.TimeOfDay(scheduledTime)
		if actualStart != nil {
			t := models.TimeOfDay(*actualStart)
			item.ActualStartTime = &t
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Replace writes a freshly generated schedule, removing any existing one for
// the same (baby, date) in the same transaction.
func (s *ScheduleStore) Replace(ctx context.Context, schedule *models.DailySchedule) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	date := schedule.ScheduleDate.Format("2006-01-02")
	_, err = tx.Exec(ctx,
		`DELETE FROM daily_schedules WHERE baby_id = $1 AND schedule_date = $2`,
		schedule.BabyID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to delete existing schedule: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO daily_schedules (id, baby_id, schedule_date, wake_up_time, age_in_months, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
		schedule.ID, schedule.BabyID, date, schedule.WakeUpTime.Minutes(), schedule.AgeInMonths,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}

	for i := range schedule.Items {
		if err := insertItem(ctx, tx, &schedule.Items[i], i); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule: %w", err)
	}
	return nil
}

func insertItem(ctx context.Context, tx pgx.Tx, item *models.ScheduleItem, position int) error {
	var actualStart *int
	if item.ActualStartTime != nil {
		v := item.ActualStartTime.Minutes()
		actualStart = &v
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO schedule_items (id, schedule_id, position, activity_type, scheduled_time, duration_minutes,
		                            note, template_index, actual_duration_minutes, actual_start_time, feeding_amount_ml,
		                            created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`,
		item.ID, item.ScheduleID, position, item.ActivityType, item.ScheduledTime.Minutes(),
		item.DurationMinutes, item.Note, item.TemplateIndex,
		item.ActualDurationMinutes, actualStart, item.FeedingAmountMl,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule item: %w", err)
	}
	return nil
}

// Update rewrites an adjusted schedule: the schedule row and every item row,
// in one transaction.
func (s *ScheduleStore) Update(ctx context.Context, schedule *models.DailySchedule) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE daily_schedules SET wake_up_time = $2, updated_at = NOW() WHERE id = $1`,
		schedule.ID, schedule.WakeUpTime.Minutes(),
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrScheduleNotFound
	}

	for i := range schedule.Items {
		item := &schedule.Items[i]
		var actualStart *int
		if item.ActualStartTime != nil {
			v := item.ActualStartTime.Minutes()
			actualStart = &v
		}
		_, err := tx.Exec(ctx, `
			UPDATE schedule_items
			SET scheduled_time = $2, duration_minutes = $3, note = $4,
			    actual_duration_minutes = $5, actual_start_time = $6, feeding_amount_ml = $7,
			    updated_at = NOW()
			WHERE id = $1`,
			item.ID, item.ScheduledTime.Minutes(), item.DurationMinutes, item.Note,
			item.ActualDurationMinutes, actualStart, item.FeedingAmountMl,
		)
		if err != nil {
			return fmt.Errorf("failed to update schedule item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule update: %w", err)
	}
	return nil
}
