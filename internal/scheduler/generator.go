// Package scheduler implements the schedule engine: turning an age and a
// wake-up time into an ordered day of activities, and reflowing the rest of
// a day when a real observed event deviates from the plan.
package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/catalog"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// Strategy selects the generation algorithm.
type Strategy string

const (
	// StrategyTemplate shifts the standard per-age template by the delta
	// between the actual and the reference wake-up time. This is the
	// canonical strategy.
	StrategyTemplate Strategy = "template"

	// StrategyGuideline builds the day iteratively from the numeric
	// guideline fields (wake windows, nap count, feeding interval).
	// It places naps and feedings differently than the template for the
	// same age; the two strategies are never mixed within one schedule.
	StrategyGuideline Strategy = "guideline"
)

// ParseStrategy maps a request string onto a Strategy, defaulting to the
// canonical template strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", string(StrategyTemplate):
		return StrategyTemplate, nil
	case string(StrategyGuideline):
		return StrategyGuideline, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

const (
	feedingBeforeNapMinutes     = 30
	feedingDurationMinutes      = 30
	feedingBeforeBedtimeMinutes = 30
)

// Generator produces the ordered activities of one day from the catalogs.
type Generator struct {
	guidelines *catalog.GuidelineCatalog
	templates  *catalog.TemplateCatalog
}

// NewGenerator builds a generator over the given catalogs.
func NewGenerator(guidelines *catalog.GuidelineCatalog, templates *catalog.TemplateCatalog) *Generator {
	return &Generator{guidelines: guidelines, templates: templates}
}

// Generate returns the ordered schedule items for one day. Items carry no
// IDs or schedule linkage; the caller assigns those before persisting.
func (g *Generator) Generate(ageInMonths int, wakeUpTime models.TimeOfDay, strategy Strategy) ([]models.ScheduleItem, error) {
	switch strategy {
	case StrategyGuideline:
		return g.generateFromGuideline(ageInMonths, wakeUpTime)
	default:
		return g.generateFromTemplate(ageInMonths, wakeUpTime)
	}
}

// generateFromTemplate shifts every item of the age bucket's standard
// template by (wakeUpTime - 07:00) minutes, copying kind, duration and note.
// Template order is already ascending, so the output is too.
func (g *Generator) generateFromTemplate(ageInMonths int, wakeUpTime models.TimeOfDay) ([]models.ScheduleItem, error) {
	template, err := g.templates.Lookup(ageInMonths)
	if err != nil {
		return nil, err
	}

	delta := wakeUpTime.Sub(catalog.ReferenceWakeTime)

	items := make([]models.ScheduleItem, 0, len(template))
	for i, t := range template {
		idx := i
		item := models.ScheduleItem{
			ActivityType:  t.ActivityType,
			ScheduledTime: t.Time.Add(delta),
			Note:          t.Note,
			TemplateIndex: &idx,
		}
		if t.DurationMinutes > 0 {
			d := t.DurationMinutes
			item.DurationMinutes = &d
		}
		items = append(items, item)
	}
	return items, nil
}

// generateFromGuideline builds the day iteratively: wake up, then for each
// nap ordinal advance by the wake window for that position, feed 30 minutes
// before every nap but the first (the first feeding happens at wake-up), nap
// for maxTotalNap/napCount minutes, and close the day with a last feeding
// and bedtime after the last wake window.
func (g *Generator) generateFromGuideline(ageInMonths int, wakeUpTime models.TimeOfDay) ([]models.ScheduleItem, error) {
	guideline, err := g.guidelines.Lookup(ageInMonths)
	if err != nil {
		return nil, err
	}

	items := make([]models.ScheduleItem, 0, guideline.NapCount*2+3)
	currentTime := wakeUpTime

	items = append(items, models.ScheduleItem{
		ActivityType:  models.ActivityWakeUp,
		ScheduledTime: currentTime,
		Note:          "Wake up and first feeding",
	})

	napDuration := 0
	if guideline.NapCount > 0 {
		napDuration = guideline.MaxTotalNapMinutes / guideline.NapCount
	}

	for napIndex := 0; napIndex < guideline.NapCount; napIndex++ {
		wakeWindow := guideline.WakeWindowForNap(napIndex)

		// The first feeding already happened at wake-up.
		if napIndex > 0 {
			feedingDur := feedingDurationMinutes
			items = append(items, models.ScheduleItem{
				ActivityType:    models.ActivityFeeding,
				ScheduledTime:   currentTime.Add(wakeWindow - feedingBeforeNapMinutes),
				DurationMinutes: &feedingDur,
				Note: fmt.Sprintf("Feeding (%d-%dml, every %d min)",
					guideline.FeedingAmountMinMl, guideline.FeedingAmountMaxMl, guideline.FeedingIntervalMinutes),
			})
		}

		napStart := currentTime.Add(wakeWindow)
		dur := napDuration
		items = append(items, models.ScheduleItem{
			ActivityType:    models.NapType(napIndex),
			ScheduledTime:   napStart,
			DurationMinutes: &dur,
			Note:            fmt.Sprintf("Nap %d (about %d min)", napIndex+1, napDuration),
		})

		currentTime = napStart.Add(napDuration)
	}

	lastWakeWindow := guideline.LastWakeWindowMinutes
	if lastWakeWindow == 0 {
		lastWakeWindow = guideline.AverageWakeWindowMinutes()
	}

	lastFeedingDur := feedingDurationMinutes
	items = append(items, models.ScheduleItem{
		ActivityType:    models.ActivityFeeding,
		ScheduledTime:   currentTime.Add(lastWakeWindow - feedingBeforeBedtimeMinutes),
		DurationMinutes: &lastFeedingDur,
		Note:            "Last feeding",
	})

	nightSleep := guideline.NightSleepMinMinutes
	items = append(items, models.ScheduleItem{
		ActivityType:    models.ActivityBedtime,
		ScheduledTime:   currentTime.Add(lastWakeWindow),
		DurationMinutes: &nightSleep,
		Note: fmt.Sprintf("Recommended bedtime %02d:%02d",
			guideline.BedtimeHour, guideline.BedtimeMinute),
	})

	return items, nil
}

// AssignIdentity stamps new IDs and the owning schedule onto freshly
// generated items.
func AssignIdentity(items []models.ScheduleItem, scheduleID uuid.UUID) {
	for i := range items {
		items[i].ID = uuid.New()
		items[i].ScheduleID = scheduleID
	}
}
