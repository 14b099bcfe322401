// Package catalog holds the immutable, age-indexed reference data the
// schedule engine is built on: per-month sleep/feeding guidelines and the
// standard one-day activity templates. Both catalogs are constructed once at
// startup and are read-only afterwards; lookups select the entry with the
// largest age key not exceeding the requested age.
package catalog

import (
	"sort"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
)

// AgeGuideline is the recommended sleep and feeding parameters for one
// age-in-months bucket. The values follow pediatric sleep-training guidance.
type AgeGuideline struct {
	AgeInMonths int

	// Sleep
	WakeWindowMinMinutes int
	WakeWindowMaxMinutes int
	NapCount             int
	MaxTotalNapMinutes   int
	NightSleepMinMinutes int
	NightSleepMaxMinutes int
	BedtimeHour          int
	BedtimeMinute        int

	// Wake windows by position in the day: the first is the shortest,
	// the last (before night sleep) the longest.
	FirstWakeWindowMinutes  int
	MiddleWakeWindowMinutes int
	LastWakeWindowMinutes   int

	// Feeding
	FeedingAmountMinMl     int
	FeedingAmountMaxMl     int
	BreastfeedingCountMin  int
	BreastfeedingCountMax  int
	FormulaCountMin        int
	FormulaCountMax        int
	FeedingIntervalMinutes int

	Description string
}

// AverageWakeWindowMinutes returns the midpoint of the wake-window bounds.
func (g AgeGuideline) AverageWakeWindowMinutes() int {
	return (g.WakeWindowMinMinutes + g.WakeWindowMaxMinutes) / 2
}

// AverageFeedingAmountMl returns the midpoint of the feeding-amount bounds.
func (g AgeGuideline) AverageFeedingAmountMl() int {
	return (g.FeedingAmountMinMl + g.FeedingAmountMaxMl) / 2
}

// WakeWindowForNap returns the wake window preceding the nap with the given
// zero-based index. First and last naps get their dedicated windows,
// everything in between the middle one.
func (g AgeGuideline) WakeWindowForNap(napIndex int) int {
	switch {
	case napIndex == 0:
		return g.FirstWakeWindowMinutes
	case napIndex == g.NapCount-1:
		return g.LastWakeWindowMinutes
	default:
		return g.MiddleWakeWindowMinutes
	}
}

// GuidelineCatalog resolves an age in months to its guideline bucket.
type GuidelineCatalog struct {
	byAge map[int]AgeGuideline
	ages  []int // sorted ascending
}

// NewGuidelineCatalog builds the catalog from the built-in guideline table.
func NewGuidelineCatalog() *GuidelineCatalog {
	c := &GuidelineCatalog{byAge: make(map[int]AgeGuideline, len(guidelineTable))}
	for _, g := range guidelineTable {
		c.byAge[g.AgeInMonths] = g
		c.ages = append(c.ages, g.AgeInMonths)
	}
	sort.Ints(c.ages)
	return c
}

// Lookup returns the guideline for the largest bucket not exceeding
// ageInMonths. It fails when the age is below the lowest bucket.
func (c *GuidelineCatalog) Lookup(ageInMonths int) (AgeGuideline, error) {
	closest := -1
	for _, age := range c.ages {
		if age > ageInMonths {
			break
		}
		closest = age
	}
	if closest < 0 {
		return AgeGuideline{}, apperr.ErrGuidelineNotFound
	}
	return c.byAge[closest], nil
}

// Ages returns the available bucket keys in ascending order.
func (c *GuidelineCatalog) Ages() []int {
	out := make([]int, len(c.ages))
	copy(out, c.ages)
	return out
}

// guidelineTable is the per-month reference data. Sourced from sleep-expert
// and pediatric recommendations; never mutated at runtime.
var guidelineTable = []AgeGuideline{
	{
		AgeInMonths:          1,
		WakeWindowMinMinutes: 60, WakeWindowMaxMinutes: 75,
		NapCount:           4,
		MaxTotalNapMinutes: 360,
		NightSleepMinMinutes: 660, NightSleepMaxMinutes: 720,
		BedtimeHour: 21, BedtimeMinute: 30,
		FirstWakeWindowMinutes: 60, MiddleWakeWindowMinutes: 65, LastWakeWindowMinutes: 75,
		FeedingAmountMinMl: 60, FeedingAmountMaxMl: 120,
		BreastfeedingCountMin: 8, BreastfeedingCountMax: 12,
		FormulaCountMin: 6, FormulaCountMax: 8,
		FeedingIntervalMinutes: 150,
		Description:            "Sleep patterns can be irregular during the first month.",
	},
	{
		AgeInMonths:          2,
		WakeWindowMinMinutes: 75, WakeWindowMaxMinutes: 90,
		NapCount:           4,
		MaxTotalNapMinutes: 300,
		NightSleepMinMinutes: 660, NightSleepMaxMinutes: 720,
		BedtimeHour: 20, BedtimeMinute: 30,
		FirstWakeWindowMinutes: 75, MiddleWakeWindowMinutes: 80, LastWakeWindowMinutes: 90,
		FeedingAmountMinMl: 90, FeedingAmountMaxMl: 150,
		BreastfeedingCountMin: 8, BreastfeedingCountMax: 12,
		FormulaCountMin: 5, FormulaCountMax: 6,
		FeedingIntervalMinutes: 150,
		Description:            "Night sleep gradually starts to lengthen.",
	},
	{
		AgeInMonths:          3,
		WakeWindowMinMinutes: 90, WakeWindowMaxMinutes: 120,
		NapCount:           4,
		MaxTotalNapMinutes: 240,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 30,
		FirstWakeWindowMinutes: 90, MiddleWakeWindowMinutes: 105, LastWakeWindowMinutes: 120,
		FeedingAmountMinMl: 120, FeedingAmountMaxMl: 180,
		BreastfeedingCountMin: 7, BreastfeedingCountMax: 9,
		FormulaCountMin: 5, FormulaCountMax: 6,
		FeedingIntervalMinutes: 180,
		Description:            "A good age to begin sleep training.",
	},
	{
		AgeInMonths:          4,
		WakeWindowMinMinutes: 110, WakeWindowMaxMinutes: 135,
		NapCount:           3,
		MaxTotalNapMinutes: 210,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 110, MiddleWakeWindowMinutes: 120, LastWakeWindowMinutes: 135,
		FeedingAmountMinMl: 120, FeedingAmountMaxMl: 180,
		BreastfeedingCountMin: 7, BreastfeedingCountMax: 9,
		FormulaCountMin: 5, FormulaCountMax: 6,
		FeedingIntervalMinutes: 180,
		Description:            "Transition period from four naps to three.",
	},
	{
		AgeInMonths:          5,
		WakeWindowMinMinutes: 120, WakeWindowMaxMinutes: 150,
		NapCount:           3,
		MaxTotalNapMinutes: 210,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 120, MiddleWakeWindowMinutes: 135, LastWakeWindowMinutes: 150,
		FeedingAmountMinMl: 120, FeedingAmountMaxMl: 180,
		BreastfeedingCountMin: 6, BreastfeedingCountMax: 8,
		FormulaCountMin: 4, FormulaCountMax: 6,
		FeedingIntervalMinutes: 210,
		Description:            "Three naps per day stabilize.",
	},
	{
		AgeInMonths:          6,
		WakeWindowMinMinutes: 120, WakeWindowMaxMinutes: 180,
		NapCount:           3,
		MaxTotalNapMinutes: 180,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 120, MiddleWakeWindowMinutes: 150, LastWakeWindowMinutes: 180,
		FeedingAmountMinMl: 150, FeedingAmountMaxMl: 200,
		BreastfeedingCountMin: 5, BreastfeedingCountMax: 7,
		FormulaCountMin: 4, FormulaCountMax: 5,
		FeedingIntervalMinutes: 210,
		Description:            "Solids begin; preparing the three-to-two nap transition.",
	},
	{
		AgeInMonths:          7,
		WakeWindowMinMinutes: 165, WakeWindowMaxMinutes: 240,
		NapCount:           2,
		MaxTotalNapMinutes: 165,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 165, MiddleWakeWindowMinutes: 180, LastWakeWindowMinutes: 240,
		FeedingAmountMinMl: 150, FeedingAmountMaxMl: 200,
		BreastfeedingCountMin: 5, BreastfeedingCountMax: 6,
		FormulaCountMin: 4, FormulaCountMax: 5,
		FeedingIntervalMinutes: 240,
		Description:            "Transition period from three naps to two.",
	},
	{
		AgeInMonths:          8,
		WakeWindowMinMinutes: 180, WakeWindowMaxMinutes: 240,
		NapCount:           2,
		MaxTotalNapMinutes: 150,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 19, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 180, MiddleWakeWindowMinutes: 210, LastWakeWindowMinutes: 240,
		FeedingAmountMinMl: 180, FeedingAmountMaxMl: 220,
		BreastfeedingCountMin: 4, BreastfeedingCountMax: 6,
		FormulaCountMin: 3, FormulaCountMax: 4,
		FeedingIntervalMinutes: 240,
		Description:            "Two naps per day stabilize.",
	},
	{
		AgeInMonths:          12,
		WakeWindowMinMinutes: 270, WakeWindowMaxMinutes: 360,
		NapCount:           1,
		MaxTotalNapMinutes: 150,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 720,
		BedtimeHour: 20, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 270, MiddleWakeWindowMinutes: 300, LastWakeWindowMinutes: 360,
		FeedingAmountMinMl: 200, FeedingAmountMaxMl: 240,
		BreastfeedingCountMin: 3, BreastfeedingCountMax: 5,
		FormulaCountMin: 3, FormulaCountMax: 4,
		FeedingIntervalMinutes: 300,
		Description:            "The two-to-one nap transition begins.",
	},
	{
		AgeInMonths:          18,
		WakeWindowMinMinutes: 300, WakeWindowMaxMinutes: 360,
		NapCount:           1,
		MaxTotalNapMinutes: 150,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 660,
		BedtimeHour: 20, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 300, MiddleWakeWindowMinutes: 330, LastWakeWindowMinutes: 360,
		FeedingAmountMinMl: 200, FeedingAmountMaxMl: 240,
		BreastfeedingCountMin: 3, BreastfeedingCountMax: 4,
		FormulaCountMin: 3, FormulaCountMax: 4,
		FeedingIntervalMinutes: 300,
		Description:            "One nap per day stabilizes.",
	},
	{
		AgeInMonths:          24,
		WakeWindowMinMinutes: 330, WakeWindowMaxMinutes: 390,
		NapCount:           1,
		MaxTotalNapMinutes: 120,
		NightSleepMinMinutes: 600, NightSleepMaxMinutes: 660,
		BedtimeHour: 20, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 330, MiddleWakeWindowMinutes: 360, LastWakeWindowMinutes: 390,
		FeedingAmountMinMl: 200, FeedingAmountMaxMl: 240,
		BreastfeedingCountMin: 3, BreastfeedingCountMax: 4,
		FormulaCountMin: 3, FormulaCountMax: 4,
		FeedingIntervalMinutes: 300,
		Description:            "Night sleep becomes the priority.",
	},
	{
		AgeInMonths:          36,
		WakeWindowMinMinutes: 360, WakeWindowMaxMinutes: 480,
		NapCount:           1,
		MaxTotalNapMinutes: 90,
		NightSleepMinMinutes: 540, NightSleepMaxMinutes: 660,
		BedtimeHour: 20, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 360, MiddleWakeWindowMinutes: 420, LastWakeWindowMinutes: 480,
		FeedingAmountMinMl: 240, FeedingAmountMaxMl: 300,
		BreastfeedingCountMin: 3, BreastfeedingCountMax: 3,
		FormulaCountMin: 3, FormulaCountMax: 3,
		FeedingIntervalMinutes: 360,
		Description:            "Some children manage without a nap.",
	},
	{
		AgeInMonths:          48,
		WakeWindowMinMinutes: 480, WakeWindowMaxMinutes: 720,
		NapCount:           0,
		MaxTotalNapMinutes: 0,
		NightSleepMinMinutes: 540, NightSleepMaxMinutes: 660,
		BedtimeHour: 20, BedtimeMinute: 0,
		FirstWakeWindowMinutes: 480, MiddleWakeWindowMinutes: 600, LastWakeWindowMinutes: 720,
		FeedingAmountMinMl: 240, FeedingAmountMaxMl: 300,
		BreastfeedingCountMin: 3, BreastfeedingCountMax: 3,
		FormulaCountMin: 3, FormulaCountMax: 3,
		FeedingIntervalMinutes: 360,
		Description:            "Most children no longer nap.",
	},
}
