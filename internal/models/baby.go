package models

import (
	"time"

	"github.com/google/uuid"
)

const fullTermWeeks = 37

// Baby represents a registered infant
type Baby struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	Name             string    `json:"name" db:"name"`
	BirthDate        time.Time `json:"birth_date" db:"birth_date"`
	GestationalWeeks *int      `json:"gestational_weeks,omitempty" db:"gestational_weeks"`
	Gender           string    `json:"gender" db:"gender"`
	ProfileImage     *string   `json:"profile_image,omitempty" db:"profile_image"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// AgeInMonths returns the baby's age in whole months at the given moment.
func (b *Baby) AgeInMonths(now time.Time) int {
	return monthsBetween(b.BirthDate, now)
}

// CorrectedAgeInMonths returns the age adjusted for prematurity.
// Babies born before 37 weeks are aged from a corrected birth date
// (actual birth date plus the weeks short of a 40-week term), floored at 0.
func (b *Baby) CorrectedAgeInMonths(now time.Time) int {
	if b.GestationalWeeks == nil || *b.GestationalWeeks >= fullTermWeeks {
		return b.AgeInMonths(now)
	}

	weeksPremature := 40 - *b.GestationalWeeks
	correctedBirth := b.BirthDate.AddDate(0, 0, weeksPremature*7)

	months := monthsBetween(correctedBirth, now)
	if months < 0 {
		return 0
	}
	return months
}

// monthsBetween counts the whole calendar months elapsed from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// CreateBabyRequest is the payload for registering a baby
type CreateBabyRequest struct {
	Name             string `json:"name" binding:"required"`
	BirthDate        string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	GestationalWeeks *int   `json:"gestational_weeks,omitempty"`
	Gender           string `json:"gender" binding:"required"`
}

// BabyResponse is the API representation of a baby
type BabyResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	BirthDate            string    `json:"birth_date"`
	GestationalWeeks     *int      `json:"gestational_weeks,omitempty"`
	Gender               string    `json:"gender"`
	AgeInMonths          int       `json:"age_in_months"`
	CorrectedAgeInMonths int       `json:"corrected_age_in_months"`
}
