package scheduler

import (
	"github.com/google/uuid"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/catalog"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/logger"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// Outcome is one observed deviation from the plan for a single item.
// Exactly one of the three fields must be set.
type Outcome struct {
	ActualStartTime       *models.TimeOfDay
	ActualEndTime         *models.TimeOfDay
	ActualDurationMinutes *int
}

func (o Outcome) validate() error {
	set := 0
	if o.ActualStartTime != nil {
		set++
	}
	if o.ActualEndTime != nil {
		set++
	}
	if o.ActualDurationMinutes != nil {
		set++
	}
	if set != 1 {
		return apperr.ErrInvalidInput.WithMessage("exactly one of actual_start_time, actual_end_time, actual_duration_minutes must be set")
	}
	return nil
}

// Adjuster reflows the remainder of a day after an observed deviation,
// preserving the original template's spacing between consecutive activities.
type Adjuster struct {
	guidelines *catalog.GuidelineCatalog
	templates  *catalog.TemplateCatalog
	log        *logger.Logger
}

// NewAdjuster builds an adjuster over the given catalogs.
func NewAdjuster(guidelines *catalog.GuidelineCatalog, templates *catalog.TemplateCatalog, log *logger.Logger) *Adjuster {
	return &Adjuster{guidelines: guidelines, templates: templates, log: log}
}

// Adjust applies an observed outcome to the item with itemID and cascades the
// change through every later templated item. Items before the changed one are
// left untouched. Custom items (no template position) keep their times; the
// cascade flows past them.
//
// The returned warnings are advisory (overtiredness); they never fail the
// adjustment.
func (a *Adjuster) Adjust(schedule *models.DailySchedule, itemID uuid.UUID, outcome Outcome) ([]string, error) {
	if err := outcome.validate(); err != nil {
		return nil, err
	}

	idx := schedule.ItemIndex(itemID)
	if idx < 0 {
		return nil, apperr.ErrItemNotFound
	}

	item := &schedule.Items[idx]
	actualEnd, err := resolveActualEnd(item, outcome)
	if err != nil {
		return nil, err
	}

	// Replay the spacing of the original template, not of the live
	// schedule: the gap before each templated item is the distance between
	// its template slot and the end of the previous template slot.
	// The template is loaded only when a templated item is reached: a
	// schedule whose items all lack a template position (guideline strategy,
	// or ages below the lowest template bucket) records the outcome and
	// leaves the rest of the day alone.
	var template []catalog.TemplateItem
	templateMissing := false
	currentTime := actualEnd
	for i := idx + 1; i < len(schedule.Items); i++ {
		next := &schedule.Items[i]
		if next.TemplateIndex == nil {
			a.log.Warn("custom item skipped during reflow",
				"schedule_id", schedule.ID,
				"item_id", next.ID,
				"activity_type", next.ActivityType)
			continue
		}
		if template == nil && !templateMissing {
			template, err = a.templates.Lookup(schedule.AgeInMonths)
			if err != nil {
				templateMissing = true
				a.log.Warn("no template for age, templated items left in place",
					"schedule_id", schedule.ID,
					"age_in_months", schedule.AgeInMonths)
			}
		}
		if templateMissing {
			continue
		}
		ti := *next.TemplateIndex
		if ti == 0 {
			// First template slot has no predecessor to replay a gap from.
			continue
		}
		if ti < 0 || ti >= len(template) {
			a.log.Warn("template index out of range, item left in place",
				"schedule_id", schedule.ID,
				"item_id", next.ID,
				"template_index", ti)
			continue
		}
		gap := template[ti].Time.Sub(template[ti-1].End())
		next.ScheduledTime = currentTime.Add(gap)
		currentTime = next.EndTime()
	}

	warnings := a.checkOvertiredness(schedule)
	return warnings, nil
}

// resolveActualEnd records the outcome on the item and returns the time the
// activity actually ended, from which the rest of the day is reflowed.
func resolveActualEnd(item *models.ScheduleItem, outcome Outcome) (models.TimeOfDay, error) {
	planned := 0
	if item.DurationMinutes != nil {
		planned = *item.DurationMinutes
	}

	switch {
	case outcome.ActualDurationMinutes != nil:
		d := *outcome.ActualDurationMinutes
		if d < 0 {
			return 0, apperr.ErrInvalidInput.WithMessage("actual_duration_minutes must not be negative")
		}
		item.ActualDurationMinutes = &d
		return item.ScheduledTime.Add(d), nil

	case outcome.ActualEndTime != nil:
		end := *outcome.ActualEndTime
		d := end.Sub(item.ScheduledTime)
		if d < 0 {
			return 0, apperr.ErrInvalidInput.WithMessage("actual_end_time is before the scheduled start")
		}
		item.ActualDurationMinutes = &d
		return end, nil

	default:
		start := *outcome.ActualStartTime
		item.ActualStartTime = &start
		item.ScheduledTime = start
		return start.Add(planned), nil
	}
}

// checkOvertiredness compares the total awake time of the day against the
// guideline's maximum wake window times the number of wake segments (one
// before each nap plus one before bedtime). Exceeding it yields a warning,
// never an error.
func (a *Adjuster) checkOvertiredness(schedule *models.DailySchedule) []string {
	guideline, err := a.guidelines.Lookup(schedule.AgeInMonths)
	if err != nil {
		return nil
	}

	var bedtime *models.TimeOfDay
	totalNap := 0
	for i := range schedule.Items {
		item := &schedule.Items[i]
		switch {
		case item.ActivityType.IsNap():
			if item.ActualDurationMinutes != nil {
				totalNap += *item.ActualDurationMinutes
			} else if item.DurationMinutes != nil {
				totalNap += *item.DurationMinutes
			}
		case item.ActivityType == models.ActivityBedtime:
			t := item.ScheduledTime
			bedtime = &t
		}
	}
	if bedtime == nil {
		return nil
	}

	awake := bedtime.Sub(schedule.WakeUpTime) - totalNap
	budget := guideline.WakeWindowMaxMinutes * (guideline.NapCount + 1)
	if budget <= 0 || awake <= budget {
		return nil
	}
	a.log.Info("overtiredness detected",
		"schedule_id", schedule.ID,
		"awake_minutes", awake,
		"budget_minutes", budget)
	return []string{"Total awake time exceeds the recommended wake windows for this age; watch for overtiredness and consider an earlier bedtime."}
}
