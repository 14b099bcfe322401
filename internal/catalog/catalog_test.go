package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
)

func TestGuidelineLookupClosestBelow(t *testing.T) {
	c := NewGuidelineCatalog()

	tests := []struct {
		age     int
		wantAge int
	}{
		{1, 1},
		{3, 3},
		{9, 8},  // between 8 and 12 resolves down
		{11, 8},
		{13, 12},
		{30, 24},
		{100, 48}, // above the highest bucket uses the highest
	}
	for _, tt := range tests {
		g, err := c.Lookup(tt.age)
		require.NoError(t, err, "age %d", tt.age)
		assert.Equal(t, tt.wantAge, g.AgeInMonths, "age %d", tt.age)
	}
}

func TestGuidelineLookupBelowLowest(t *testing.T) {
	c := NewGuidelineCatalog()

	_, err := c.Lookup(0)
	assert.ErrorIs(t, err, apperr.ErrGuidelineNotFound)
}

func TestGuidelineWakeWindowForNap(t *testing.T) {
	c := NewGuidelineCatalog()

	g, err := c.Lookup(3)
	require.NoError(t, err)
	require.Equal(t, 4, g.NapCount)

	assert.Equal(t, g.FirstWakeWindowMinutes, g.WakeWindowForNap(0))
	assert.Equal(t, g.MiddleWakeWindowMinutes, g.WakeWindowForNap(1))
	assert.Equal(t, g.MiddleWakeWindowMinutes, g.WakeWindowForNap(2))
	assert.Equal(t, g.LastWakeWindowMinutes, g.WakeWindowForNap(3))
}

func TestTemplateLookupClosestBelow(t *testing.T) {
	c := NewTemplateCatalog()

	for _, tt := range []struct{ age, wantNaps int }{
		{3, 4},
		{4, 3},
		{5, 3},
		{6, 3},
		{7, 2},
		{8, 2},
		{9, 2},  // falls back to the 8-month template
		{11, 2},
		{12, 1},
		{15, 1},
		{36, 1}, // above the highest bucket uses the 24-month template
	} {
		template, err := c.Lookup(tt.age)
		require.NoError(t, err, "age %d", tt.age)

		naps := 0
		for _, item := range template {
			if item.ActivityType.IsNap() {
				naps++
			}
		}
		assert.Equal(t, tt.wantNaps, naps, "age %d", tt.age)
	}
}

func TestTemplateLookupBelowLowest(t *testing.T) {
	c := NewTemplateCatalog()

	_, err := c.Lookup(2)
	assert.ErrorIs(t, err, apperr.ErrTemplateNotFound)
}

func TestTemplatesWellFormed(t *testing.T) {
	c := NewTemplateCatalog()

	for _, age := range c.Ages() {
		template, err := c.Lookup(age)
		require.NoError(t, err)
		require.NotEmpty(t, template, "age %d", age)

		// Every template starts with a wake-up at the reference time.
		assert.Equal(t, models.ActivityWakeUp, template[0].ActivityType, "age %d", age)
		assert.Equal(t, ReferenceWakeTime, template[0].Time, "age %d", age)

		// Ends with a bedtime.
		last := template[len(template)-1]
		assert.Equal(t, models.ActivityBedtime, last.ActivityType, "age %d", age)

		// Times never go backwards.
		for i := 1; i < len(template); i++ {
			assert.GreaterOrEqual(t, template[i].Time.Sub(template[i-1].Time), 0,
				"age %d item %d (%s)", age, i, template[i].ActivityType)
		}
	}
}
