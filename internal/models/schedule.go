package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType identifies the kind of a schedule item
type ActivityType string

const (
	ActivityWakeUp  ActivityType = "WAKE_UP"
	ActivityNap     ActivityType = "NAP"
	ActivityNap1    ActivityType = "NAP1"
	ActivityNap2    ActivityType = "NAP2"
	ActivityNap3    ActivityType = "NAP3"
	ActivityNap4    ActivityType = "NAP4"
	ActivityFeeding ActivityType = "FEEDING"
	ActivityBedtime ActivityType = "BEDTIME"
	ActivityPlay    ActivityType = "PLAY"
	ActivityBath    ActivityType = "BATH"
	ActivityOther   ActivityType = "OTHER"
)

// IsNap reports whether the activity is a nap of any ordinal.
func (a ActivityType) IsNap() bool {
	switch a {
	case ActivityNap, ActivityNap1, ActivityNap2, ActivityNap3, ActivityNap4:
		return true
	}
	return false
}

// NapType returns the ordinal nap activity for a zero-based nap index.
func NapType(napIndex int) ActivityType {
	switch napIndex {
	case 0:
		return ActivityNap1
	case 1:
		return ActivityNap2
	case 2:
		return ActivityNap3
	case 3:
		return ActivityNap4
	}
	return ActivityNap
}

// ScheduleItem is a single timed activity within a daily schedule.
// TemplateIndex records the item's position in the standard template it was
// generated from, so adjustments can replay template spacing even after
// custom items are inserted. It is nil for items with no template counterpart.
type ScheduleItem struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	ScheduleID      uuid.UUID    `json:"schedule_id" db:"schedule_id"`
	ActivityType    ActivityType `json:"activity_type" db:"activity_type"`
	ScheduledTime   TimeOfDay    `json:"scheduled_time" db:"scheduled_time"`
	DurationMinutes *int         `json:"duration_minutes,omitempty" db:"duration_minutes"`
	Note            string       `json:"note,omitempty" db:"note"`
	TemplateIndex   *int         `json:"-" db:"template_index"`

	// Observed outcome, recorded after the real-world event
	ActualDurationMinutes *int       `json:"actual_duration_minutes,omitempty" db:"actual_duration_minutes"`
	ActualStartTime       *TimeOfDay `json:"actual_start_time,omitempty" db:"actual_start_time"`
	FeedingAmountMl       *int       `json:"feeding_amount_ml,omitempty" db:"feeding_amount_ml"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EndTime returns the scheduled time plus the planned duration, if any.
func (i *ScheduleItem) EndTime() TimeOfDay {
	if i.DurationMinutes == nil {
		return i.ScheduledTime
	}
	return i.ScheduledTime.Add(*i.DurationMinutes)
}

// DailySchedule owns the ordered activities for one (baby, date) pair.
// AgeInMonths is frozen at generation time: the schedule does not change
// bucket if the baby ages after it was generated.
type DailySchedule struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	BabyID       uuid.UUID      `json:"baby_id" db:"baby_id"`
	ScheduleDate time.Time      `json:"schedule_date" db:"schedule_date"`
	WakeUpTime   TimeOfDay      `json:"wake_up_time" db:"wake_up_time"`
	AgeInMonths  int            `json:"age_in_months" db:"age_in_months"`
	Items        []ScheduleItem `json:"items"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// ItemIndex returns the position of the item with the given ID, or -1.
func (s *DailySchedule) ItemIndex(itemID uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// GenerateScheduleRequest is the payload for schedule generation
type GenerateScheduleRequest struct {
	ScheduleDate string `json:"schedule_date,omitempty"` // YYYY-MM-DD, defaults to today
	WakeUpTime   string `json:"wake_up_time" binding:"required"`
	Strategy     string `json:"strategy,omitempty"` // "template" (default) or "guideline"
}

// AdjustScheduleRequest reports one observed deviation for a schedule item.
// Exactly one of the three actual fields must be set.
type AdjustScheduleRequest struct {
	ScheduleItemID        uuid.UUID `json:"schedule_item_id" binding:"required"`
	ScheduleDate          string    `json:"schedule_date,omitempty"`
	ActualStartTime       *string   `json:"actual_start_time,omitempty"`
	ActualEndTime         *string   `json:"actual_end_time,omitempty"`
	ActualDurationMinutes *int      `json:"actual_duration_minutes,omitempty"`
}

// UpdateScheduleItemRequest records a feeding amount or an actual sleep
// duration on a single item. A sleep duration triggers a reflow of the
// remaining day, same as AdjustScheduleRequest with a duration.
type UpdateScheduleItemRequest struct {
	ScheduledTime       *string `json:"scheduled_time,omitempty"`
	FeedingAmountMl     *int    `json:"feeding_amount_ml,omitempty"`
	ActualSleepDuration *int    `json:"actual_sleep_duration,omitempty"`
}

// ScheduleItemResponse is the API representation of one schedule item
type ScheduleItemResponse struct {
	ID                    uuid.UUID    `json:"id"`
	ActivityType          ActivityType `json:"activity_type"`
	StartTime             string       `json:"start_time"`
	EndTime               *string      `json:"end_time,omitempty"`
	DurationMinutes       *int         `json:"duration_minutes,omitempty"`
	Note                  string       `json:"note,omitempty"`
	ActualDurationMinutes *int         `json:"actual_duration_minutes,omitempty"`
	ActualStartTime       *string      `json:"actual_start_time,omitempty"`
	FeedingAmountMl       *int         `json:"feeding_amount_ml,omitempty"`
}

// DailyScheduleResponse is the API representation of a full day
type DailyScheduleResponse struct {
	ScheduleID   uuid.UUID              `json:"schedule_id"`
	BabyID       uuid.UUID              `json:"baby_id"`
	ScheduleDate string                 `json:"schedule_date"`
	WakeUpTime   string                 `json:"wake_up_time"`
	AgeInMonths  int                    `json:"age_in_months"`
	NapCount     int                    `json:"nap_count"`
	FeedingCount int                    `json:"feeding_count"`
	Bedtime      *string                `json:"bedtime,omitempty"`
	Items        []ScheduleItemResponse `json:"items"`
	Warnings     []string               `json:"warnings,omitempty"`
}

// NewDailyScheduleResponse converts a schedule into its API shape.
func NewDailyScheduleResponse(s *DailySchedule, warnings []string) DailyScheduleResponse {
	items := make([]ScheduleItemResponse, 0, len(s.Items))
	napCount, feedingCount := 0, 0
	var bedtime *string

	for i := range s.Items {
		item := &s.Items[i]
		resp := ScheduleItemResponse{
			ID:                    item.ID,
			ActivityType:          item.ActivityType,
			StartTime:             item.ScheduledTime.String(),
			DurationMinutes:       item.DurationMinutes,
			Note:                  item.Note,
			ActualDurationMinutes: item.ActualDurationMinutes,
			FeedingAmountMl:       item.FeedingAmountMl,
		}
		if item.DurationMinutes != nil {
			end := item.EndTime().String()
			resp.EndTime = &end
		}
		if item.ActualStartTime != nil {
			start := item.ActualStartTime.String()
			resp.ActualStartTime = &start
		}

		switch {
		case item.ActivityType.IsNap():
			napCount++
		case item.ActivityType == ActivityFeeding:
			feedingCount++
		case item.ActivityType == ActivityBedtime:
			t := item.ScheduledTime.String()
			bedtime = &t
		}

		items = append(items, resp)
	}

	return DailyScheduleResponse{
		ScheduleID:   s.ID,
		BabyID:       s.BabyID,
		ScheduleDate: s.ScheduleDate.Format("2006-01-02"),
		WakeUpTime:   s.WakeUpTime.String(),
		AgeInMonths:  s.AgeInMonths,
		NapCount:     napCount,
		FeedingCount: feedingCount,
		Bedtime:      bedtime,
		Items:        items,
		Warnings:     warnings,
	}
}
