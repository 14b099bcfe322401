package catalog

import (
	"sort"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

// ReferenceWakeTime is the wake-up time every standard template is anchored
// to. Generation shifts a template by the delta between the actual wake-up
// time and this reference.
var ReferenceWakeTime = models.NewTimeOfDay(7, 0)

// TemplateItem is one activity in a standard daily template, anchored to the
// 07:00 reference wake time. DurationMinutes is zero for point-in-time
// markers such as wake-ups.
type TemplateItem struct {
	ActivityType    models.ActivityType
	Time            models.TimeOfDay
	DurationMinutes int
	Note            string
}

// End returns the item's time plus its duration.
func (t TemplateItem) End() models.TimeOfDay {
	return t.Time.Add(t.DurationMinutes)
}

// TemplateCatalog resolves an age in months to its standard daily template.
// Each template is an ordered, monotonically non-decreasing activity sequence.
type TemplateCatalog struct {
	byAge map[int][]TemplateItem
	ages  []int // sorted ascending
}

// NewTemplateCatalog builds the catalog from the built-in template tables.
func NewTemplateCatalog() *TemplateCatalog {
	c := &TemplateCatalog{byAge: make(map[int][]TemplateItem, len(templateTable))}
	for age, items := range templateTable {
		c.byAge[age] = items
		c.ages = append(c.ages, age)
	}
	sort.Ints(c.ages)
	return c
}

// Lookup returns the template for the largest bucket not exceeding
// ageInMonths. It fails when the age is below the lowest bucket.
// The returned slice is shared reference data and must not be modified.
func (c *TemplateCatalog) Lookup(ageInMonths int) ([]TemplateItem, error) {
	closest := -1
	for _, age := range c.ages {
		if age > ageInMonths {
			break
		}
		closest = age
	}
	if closest < 0 {
		return nil, apperr.ErrTemplateNotFound
	}
	return c.byAge[closest], nil
}

// Ages returns the available bucket keys in ascending order.
func (c *TemplateCatalog) Ages() []int {
	out := make([]int, len(c.ages))
	copy(out, c.ages)
	return out
}

func tpl(hour, minute int, activity models.ActivityType, duration int, note string) TemplateItem {
	return TemplateItem{
		ActivityType:    activity,
		Time:            models.NewTimeOfDay(hour, minute),
		DurationMinutes: duration,
		Note:            note,
	}
}

// templateTable holds the monthly standard schedules, all anchored at a
// 07:00 wake-up. Feeding spacing: roughly 3h at 3-4 months, 3.5h at
// 5 months, 4h from 6 months on.
var templateTable = map[int][]TemplateItem{
	// 3 months: four naps, 3-hour feeding interval
	3: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(8, 30, models.ActivityNap1, 60, "Nap 1 (1h)"),
		tpl(9, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(10, 15, models.ActivityFeeding, 20, "Feeding 2"),
		tpl(11, 10, models.ActivityNap2, 90, "Nap 2 (1h 30m)"),
		tpl(12, 40, models.ActivityWakeUp, 0, "Wake up"),
		tpl(13, 15, models.ActivityFeeding, 20, "Feeding 3"),
		tpl(14, 25, models.ActivityNap3, 45, "Nap 3 (45m)"),
		tpl(15, 10, models.ActivityWakeUp, 0, "Wake up"),
		tpl(16, 15, models.ActivityFeeding, 20, "Feeding 4"),
		tpl(17, 0, models.ActivityNap4, 30, "Nap 4 (30m)"),
		tpl(17, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(19, 15, models.ActivityFeeding, 20, "Feeding 5 (last)"),
		tpl(19, 30, models.ActivityBedtime, 660, "Bedtime (about 11h night sleep)"),
	},
	// 4 months: three naps, 3-hour feeding interval
	4: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(8, 50, models.ActivityNap1, 70, "Nap 1 (1h 10m)"),
		tpl(10, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(10, 15, models.ActivityFeeding, 20, "Feeding 2"),
		tpl(12, 15, models.ActivityNap2, 105, "Nap 2 (1h 45m)"),
		tpl(14, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(14, 15, models.ActivityFeeding, 20, "Feeding 3"),
		tpl(16, 15, models.ActivityNap3, 45, "Nap 3 (45m)"),
		tpl(17, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(17, 15, models.ActivityFeeding, 20, "Feeding 4 (last)"),
		tpl(19, 0, models.ActivityBedtime, 660, "Bedtime (about 11-12h night sleep)"),
	},
	// 5 months: three naps, 3.5-hour feeding interval
	5: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(9, 0, models.ActivityNap1, 90, "Nap 1 (1h 30m)"),
		tpl(10, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(10, 45, models.ActivityFeeding, 20, "Feeding 2"),
		tpl(12, 45, models.ActivityNap2, 90, "Nap 2 (1h 30m)"),
		tpl(14, 15, models.ActivityWakeUp, 0, "Wake up"),
		tpl(14, 15, models.ActivityFeeding, 20, "Feeding 3"),
		tpl(16, 30, models.ActivityNap3, 60, "Nap 3 (1h)"),
		tpl(17, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(17, 45, models.ActivityFeeding, 20, "Feeding 4 (last)"),
		tpl(19, 15, models.ActivityBedtime, 660, "Bedtime (about 11-12h night sleep)"),
	},
	// 6 months: solids begin, 4-hour feeding interval
	6: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(9, 0, models.ActivityNap1, 105, "Nap 1 (1h 45m)"),
		tpl(10, 45, models.ActivityWakeUp, 0, "Wake up"),
		tpl(11, 15, models.ActivityFeeding, 30, "Solids + feeding 2"),
		tpl(13, 0, models.ActivityNap2, 75, "Nap 2 (1h 15m)"),
		tpl(14, 15, models.ActivityWakeUp, 0, "Wake up"),
		tpl(15, 15, models.ActivityFeeding, 20, "Feeding 3 (top-up)"),
		tpl(16, 30, models.ActivityNap3, 45, "Nap 3 (45m)"),
		tpl(17, 15, models.ActivityWakeUp, 0, "Wake up"),
		tpl(19, 15, models.ActivityFeeding, 20, "Feeding 4 (last)"),
		tpl(19, 30, models.ActivityBedtime, 660, "Bedtime (about 11-12h night sleep)"),
	},
	// 7-8 months: two naps, 4-hour feeding interval
	7: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(9, 45, models.ActivityNap1, 90, "Nap 1 (1h 30m)"),
		tpl(11, 15, models.ActivityWakeUp, 0, "Wake up"),
		tpl(11, 15, models.ActivityFeeding, 30, "Solids + feeding 2"),
		tpl(14, 15, models.ActivityNap2, 75, "Nap 2 (1h 15m)"),
		tpl(15, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(15, 45, models.ActivityFeeding, 30, "Solids + feeding 3"),
		tpl(19, 15, models.ActivityFeeding, 20, "Feeding 4 (last)"),
		tpl(19, 30, models.ActivityBedtime, 660, "Bedtime (about 11-12h night sleep)"),
	},
	8: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 20, "Feeding 1"),
		tpl(9, 45, models.ActivityNap1, 90, "Nap 1 (1h 30m)"),
		tpl(11, 15, models.ActivityWakeUp, 0, "Wake up"),
		tpl(11, 15, models.ActivityFeeding, 30, "Solids + feeding 2"),
		tpl(14, 15, models.ActivityNap2, 75, "Nap 2 (1h 15m)"),
		tpl(15, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(15, 45, models.ActivityFeeding, 30, "Solids + feeding 3"),
		tpl(19, 15, models.ActivityFeeding, 20, "Feeding 4 (last)"),
		tpl(19, 30, models.ActivityBedtime, 660, "Bedtime (about 11-12h night sleep)"),
	},
	// 11 months: two naps, meals replace most feedings
	11: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 30, "Breakfast"),
		tpl(9, 45, models.ActivityFeeding, 15, "Snack"),
		tpl(10, 30, models.ActivityNap1, 60, "Nap 1 (1h)"),
		tpl(11, 30, models.ActivityWakeUp, 0, "Wake up"),
		tpl(11, 45, models.ActivityFeeding, 30, "Lunch"),
		tpl(14, 30, models.ActivityFeeding, 15, "Snack"),
		tpl(15, 0, models.ActivityNap2, 60, "Nap 2 (1h)"),
		tpl(16, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(16, 15, models.ActivityFeeding, 15, "Snack"),
		tpl(18, 30, models.ActivityFeeding, 30, "Dinner"),
		tpl(20, 0, models.ActivityBedtime, 660, "Bedtime (about 11h night sleep)"),
	},
	// 12-24 months: single nap
	12: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 30, "Breakfast"),
		tpl(10, 0, models.ActivityFeeding, 15, "Snack"),
		tpl(11, 30, models.ActivityFeeding, 30, "Lunch"),
		tpl(12, 30, models.ActivityNap1, 90, "Nap (1h 30m to 2h)"),
		tpl(14, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(14, 15, models.ActivityFeeding, 15, "Snack"),
		tpl(18, 0, models.ActivityFeeding, 30, "Dinner"),
		tpl(20, 0, models.ActivityBedtime, 660, "Bedtime (about 11h night sleep)"),
	},
	18: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 30, "Breakfast"),
		tpl(10, 0, models.ActivityFeeding, 15, "Snack"),
		tpl(11, 30, models.ActivityFeeding, 30, "Lunch"),
		tpl(12, 30, models.ActivityNap1, 90, "Nap (1h 30m to 2h)"),
		tpl(14, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(14, 15, models.ActivityFeeding, 15, "Snack"),
		tpl(18, 0, models.ActivityFeeding, 30, "Dinner"),
		tpl(20, 0, models.ActivityBedtime, 660, "Bedtime (about 11h night sleep)"),
	},
	24: {
		tpl(7, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(7, 15, models.ActivityFeeding, 30, "Breakfast"),
		tpl(10, 0, models.ActivityFeeding, 15, "Snack"),
		tpl(11, 30, models.ActivityFeeding, 30, "Lunch"),
		tpl(12, 30, models.ActivityNap1, 90, "Nap (1h 30m to 2h)"),
		tpl(14, 0, models.ActivityWakeUp, 0, "Wake up"),
		tpl(14, 15, models.ActivityFeeding, 15, "Snack"),
		tpl(18, 0, models.ActivityFeeding, 30, "Dinner"),
		tpl(20, 0, models.ActivityBedtime, 660, "Bedtime (about 11h night sleep)"),
	},
}
