package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/logger"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// BabyStore is the persistence the service needs for babies.
type BabyStore interface {
	GetBaby(ctx context.Context, babyID uuid.UUID) (*models.Baby, error)
}

// ScheduleStore is the persistence the service needs for schedules.
// Replace atomically removes any existing schedule for the (baby, date) pair
// and writes the new one. Update rewrites the schedule's items in place.
type ScheduleStore interface {
	GetSchedule(ctx context.Context, babyID uuid.UUID, date time.Time) (*models.DailySchedule, error)
	Replace(ctx context.Context, schedule *models.DailySchedule) error
	Update(ctx context.Context, schedule *models.DailySchedule) error
}

// Service wires the generator and adjuster to persistence.
type Service struct {
	babies    BabyStore
	schedules ScheduleStore
	generator *Generator
	adjuster  *Adjuster
	log       *logger.Logger
	now       func() time.Time
}

// NewService builds a schedule service.
func NewService(babies BabyStore, schedules ScheduleStore, generator *Generator, adjuster *Adjuster, log *logger.Logger) *Service {
	return &Service{
		babies:    babies,
		schedules: schedules,
		generator: generator,
		adjuster:  adjuster,
		log:       log,
		now:       time.Now,
	}
}

// Generate builds and persists the schedule for one day, replacing any
// schedule already stored for that (baby, date). The age bucket is resolved
// from the baby's corrected age on the schedule date.
func (s *Service) Generate(ctx context.Context, babyID uuid.UUID, date time.Time, wakeUpTime models.TimeOfDay, strategy Strategy) (*models.DailySchedule, error) {
	baby, err := s.babies.GetBaby(ctx, babyID)
	if err != nil {
		return nil, err
	}

	age := baby.CorrectedAgeInMonths(date)
	items, err := s.generator.Generate(age, wakeUpTime, strategy)
	if err != nil {
		return nil, err
	}

	now := s.now()
	schedule := &models.DailySchedule{
		ID:           uuid.New(),
		BabyID:       babyID,
		ScheduleDate: date,
		WakeUpTime:   wakeUpTime,
		AgeInMonths:  age,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	AssignIdentity(schedule.Items, schedule.ID)
	for i := range schedule.Items {
		schedule.Items[i].CreatedAt = now
		schedule.Items[i].UpdatedAt = now
	}

	if err := s.schedules.Replace(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.Info("schedule generated",
		"baby_id", babyID,
		"date", date.Format("2006-01-02"),
		"age_months", age,
		"strategy", string(strategy),
		"items", len(schedule.Items))
	return schedule, nil
}

// GetSchedule loads the schedule for a (baby, date) pair.
func (s *Service) GetSchedule(ctx context.Context, babyID uuid.UUID, date time.Time) (*models.DailySchedule, error) {
	if _, err := s.babies.GetBaby(ctx, babyID); err != nil {
		return nil, err
	}
	return s.schedules.GetSchedule(ctx, babyID, date)
}

// Adjust records an observed outcome for one item and reflows the rest of
// the day, persisting the updated schedule. The store is not touched when
// validation or item lookup fails.
func (s *Service) Adjust(ctx context.Context, babyID uuid.UUID, date time.Time, itemID uuid.UUID, outcome Outcome) (*models.DailySchedule, []string, error) {
	schedule, err := s.schedules.GetSchedule(ctx, babyID, date)
	if err != nil {
		return nil, nil, err
	}

	warnings, err := s.adjuster.Adjust(schedule, itemID, outcome)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	schedule.UpdatedAt = now
	for i := range schedule.Items {
		schedule.Items[i].UpdatedAt = now
	}
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, nil, err
	}

	s.log.Info("schedule adjusted",
		"baby_id", babyID,
		"date", date.Format("2006-01-02"),
		"item_id", itemID,
		"warnings", len(warnings))
	return schedule, warnings, nil
}

// UpdateItem records a feeding amount, moves an item, or applies an actual
// sleep duration to one item. A sleep duration cascades through the rest of
// the day the same way Adjust does.
func (s *Service) UpdateItem(ctx context.Context, babyID uuid.UUID, date time.Time, itemID uuid.UUID, req models.UpdateScheduleItemRequest) (*models.DailySchedule, []string, error) {
	if req.ActualSleepDuration != nil {
		return s.Adjust(ctx, babyID, date, itemID, Outcome{ActualDurationMinutes: req.ActualSleepDuration})
	}

	schedule, err := s.schedules.GetSchedule(ctx, babyID, date)
	if err != nil {
		return nil, nil, err
	}
	idx := schedule.ItemIndex(itemID)
	if idx < 0 {
		return nil, nil, apperr.ErrItemNotFound
	}
	item := &schedule.Items[idx]

	changed := false
	if req.FeedingAmountMl != nil {
		if *req.FeedingAmountMl < 0 {
			return nil, nil, apperr.ErrInvalidInput.WithMessage("feeding_amount_ml must not be negative")
		}
		item.FeedingAmountMl = req.FeedingAmountMl
		changed = true
	}
	if req.ScheduledTime != nil {
		t, err := models.ParseTimeOfDay(*req.ScheduledTime)
		if err != nil {
			return nil, nil, apperr.ErrInvalidInput.WithMessage("scheduled_time must be HH:MM")
		}
		item.ScheduledTime = t
		changed = true
	}
	if !changed {
		return nil, nil, apperr.ErrInvalidInput.WithMessage("no updatable field set")
	}

	now := s.now()
	item.UpdatedAt = now
	schedule.UpdatedAt = now
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, nil, err
	}
	return schedule, nil, nil
}
