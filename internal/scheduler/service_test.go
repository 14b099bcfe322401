package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/catalog"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/logger"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

type fakeBabyStore struct {
	babies map[uuid.UUID]*models.Baby
}

func (f *fakeBabyStore) GetBaby(_ context.Context, babyID uuid.UUID) (*models.Baby, error) {
	baby, ok := f.babies[babyID]
	if !ok {
		return nil, apperr.ErrBabyNotFound
	}
	return baby, nil
}

type fakeScheduleStore struct {
	schedules map[string]*models.DailySchedule
	replaces  int
	updates   int
}

func scheduleKey(babyID uuid.UUID, date time.Time) string {
	return babyID.String() + "/" + date.Format("2006-01-02")
}

func (f *fakeScheduleStore) GetSchedule(_ context.Context, babyID uuid.UUID, date time.Time) (*models.DailySchedule, error) {
	s, ok := f.schedules[scheduleKey(babyID, date)]
	if !ok {
		return nil, apperr.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleStore) Replace(_ context.Context, schedule *models.DailySchedule) error {
	f.replaces++
	f.schedules[scheduleKey(schedule.BabyID, schedule.ScheduleDate)] = schedule
	return nil
}

func (f *fakeScheduleStore) Update(_ context.Context, schedule *models.DailySchedule) error {
	f.updates++
	f.schedules[scheduleKey(schedule.BabyID, schedule.ScheduleDate)] = schedule
	return nil
}

func newTestService(babies *fakeBabyStore, schedules *fakeScheduleStore) *Service {
	guidelines := catalog.NewGuidelineCatalog()
	templates := catalog.NewTemplateCatalog()
	log := logger.NewNop()
	return NewService(babies, schedules,
		NewGenerator(guidelines, templates),
		NewAdjuster(guidelines, templates, log),
		log)
}

func testDate() time.Time {
	return time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
}

func newTestBabyStore(babyID uuid.UUID) *fakeBabyStore {
	// Five months old on the test date.
	return &fakeBabyStore{babies: map[uuid.UUID]*models.Baby{
		babyID: {
			ID:        babyID,
			UserID:    uuid.New(),
			Name:      "Dami",
			BirthDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func TestServiceGenerate(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(6, 40), StrategyTemplate)
	require.NoError(t, err)

	assert.Equal(t, babyID, schedule.BabyID)
	assert.Equal(t, 5, schedule.AgeInMonths)
	assert.Equal(t, models.NewTimeOfDay(6, 40), schedule.WakeUpTime)
	assert.NotEmpty(t, schedule.Items)
	for _, item := range schedule.Items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, schedule.ID, item.ScheduleID)
	}
	assert.Equal(t, 1, schedules.replaces)

	stored, err := svc.GetSchedule(context.Background(), babyID, testDate())
	require.NoError(t, err)
	assert.Equal(t, schedule.ID, stored.ID)
}

func TestServiceGenerateUsesCorrectedAge(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	weeks := 32
	babies.babies[babyID].GestationalWeeks = &weeks
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	// Eight weeks premature: corrected age is 3 months, not 5.
	assert.Equal(t, 3, schedule.AgeInMonths)
}

func TestServiceGenerateReplacesExisting(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	first, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(8, 0), StrategyTemplate)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, schedules.replaces)

	stored, err := svc.GetSchedule(context.Background(), babyID, testDate())
	require.NoError(t, err)
	assert.Equal(t, second.ID, stored.ID)
}

func TestServiceGenerateUnknownBaby(t *testing.T) {
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(&fakeBabyStore{babies: map[uuid.UUID]*models.Baby{}}, schedules)

	_, err := svc.Generate(context.Background(), uuid.New(), testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	assert.ErrorIs(t, err, apperr.ErrBabyNotFound)
	assert.Equal(t, 0, schedules.replaces)
}

func TestServiceAdjust(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	var napID uuid.UUID
	for _, item := range schedule.Items {
		if item.ActivityType.IsNap() {
			napID = item.ID
			break
		}
	}
	require.NotEqual(t, uuid.Nil, napID)

	d := 30
	adjusted, _, err := svc.Adjust(context.Background(), babyID, testDate(), napID, Outcome{ActualDurationMinutes: &d})
	require.NoError(t, err)
	assert.Equal(t, 1, schedules.updates)

	idx := adjusted.ItemIndex(napID)
	require.NotEqual(t, -1, idx)
	require.NotNil(t, adjusted.Items[idx].ActualDurationMinutes)
	assert.Equal(t, 30, *adjusted.Items[idx].ActualDurationMinutes)
}

func TestServiceAdjustUnknownItemDoesNotPersist(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	_, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	d := 30
	_, _, err = svc.Adjust(context.Background(), babyID, testDate(), uuid.New(), Outcome{ActualDurationMinutes: &d})
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)
	assert.Equal(t, 0, schedules.updates)
}

func TestServiceAdjustMissingSchedule(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	d := 30
	_, _, err := svc.Adjust(context.Background(), babyID, testDate(), uuid.New(), Outcome{ActualDurationMinutes: &d})
	assert.ErrorIs(t, err, apperr.ErrScheduleNotFound)
}

func TestServiceUpdateItemFeedingAmount(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	var feedingID uuid.UUID
	for _, item := range schedule.Items {
		if item.ActivityType == models.ActivityFeeding {
			feedingID = item.ID
			break
		}
	}
	require.NotEqual(t, uuid.Nil, feedingID)

	amount := 160
	updated, warnings, err := svc.UpdateItem(context.Background(), babyID, testDate(), feedingID,
		models.UpdateScheduleItemRequest{FeedingAmountMl: &amount})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	idx := updated.ItemIndex(feedingID)
	require.NotNil(t, updated.Items[idx].FeedingAmountMl)
	assert.Equal(t, 160, *updated.Items[idx].FeedingAmountMl)
}

func TestServiceUpdateItemSleepDurationReflows(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	napIdx := -1
	for i, item := range schedule.Items {
		if item.ActivityType.IsNap() {
			napIdx = i
			break
		}
	}
	require.NotEqual(t, -1, napIdx)
	nextTime := schedule.Items[napIdx+1].ScheduledTime

	d := *schedule.Items[napIdx].DurationMinutes - 30
	updated, _, err := svc.UpdateItem(context.Background(), babyID, testDate(), schedule.Items[napIdx].ID,
		models.UpdateScheduleItemRequest{ActualSleepDuration: &d})
	require.NoError(t, err)

	assert.Equal(t, nextTime.Add(-30), updated.Items[napIdx+1].ScheduledTime)
}

func TestServiceUpdateItemNoFields(t *testing.T) {
	babyID := uuid.New()
	babies := newTestBabyStore(babyID)
	schedules := &fakeScheduleStore{schedules: map[string]*models.DailySchedule{}}
	svc := newTestService(babies, schedules)

	schedule, err := svc.Generate(context.Background(), babyID, testDate(), models.NewTimeOfDay(7, 0), StrategyTemplate)
	require.NoError(t, err)

	_, _, err = svc.UpdateItem(context.Background(), babyID, testDate(), schedule.Items[0].ID,
		models.UpdateScheduleItemRequest{})
	appErr := apperr.From(err)
	assert.Equal(t, apperr.ErrInvalidInput.Code, appErr.Code)
	assert.Equal(t, 0, schedules.updates)
}
