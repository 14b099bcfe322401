package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonths(t *testing.T) {
	baby := Baby{BirthDate: date(2025, time.March, 15)}

	assert.Equal(t, 0, baby.AgeInMonths(date(2025, time.March, 20)))
	assert.Equal(t, 0, baby.AgeInMonths(date(2025, time.April, 14)))
	assert.Equal(t, 1, baby.AgeInMonths(date(2025, time.April, 15)))
	assert.Equal(t, 5, baby.AgeInMonths(date(2025, time.August, 28)))
	assert.Equal(t, 12, baby.AgeInMonths(date(2026, time.March, 15)))
}

func TestCorrectedAgeFullTerm(t *testing.T) {
	weeks := 40
	baby := Baby{BirthDate: date(2025, time.January, 10), GestationalWeeks: &weeks}

	// Full-term babies use their chronological age.
	now := date(2025, time.July, 10)
	assert.Equal(t, baby.AgeInMonths(now), baby.CorrectedAgeInMonths(now))
}

func TestCorrectedAgePremature(t *testing.T) {
	// Born at 32 weeks: corrected birth date is 8 weeks later.
	weeks := 32
	baby := Baby{BirthDate: date(2025, time.January, 10), GestationalWeeks: &weeks}

	now := date(2025, time.July, 10)
	assert.Equal(t, 6, baby.AgeInMonths(now))
	assert.Equal(t, 4, baby.CorrectedAgeInMonths(now))
}

func TestCorrectedAgeClampedAtZero(t *testing.T) {
	// A very premature newborn would have a negative corrected age.
	weeks := 30
	baby := Baby{BirthDate: date(2025, time.August, 1), GestationalWeeks: &weeks}

	assert.Equal(t, 0, baby.CorrectedAgeInMonths(date(2025, time.August, 20)))
}

func TestCorrectedAgeUnknownGestation(t *testing.T) {
	baby := Baby{BirthDate: date(2025, time.February, 1)}

	now := date(2025, time.August, 1)
	assert.Equal(t, baby.AgeInMonths(now), baby.CorrectedAgeInMonths(now))
}
