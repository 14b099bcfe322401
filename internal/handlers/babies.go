package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/middleware"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/store"
)

func babyToResponse(baby *models.Baby, now time.Time) models.BabyResponse {
	return models.BabyResponse{
		ID:                   baby.ID,
		Name:                 baby.Name,
		BirthDate:            baby.BirthDate.Format("2006-01-02"),
		GestationalWeeks:     baby.GestationalWeeks,
		Gender:               baby.Gender,
		AgeInMonths:          baby.AgeInMonths(now),
		CorrectedAgeInMonths: baby.CorrectedAgeInMonths(now),
	}
}

// ownedBaby loads a baby and verifies it belongs to the authenticated user.
func ownedBaby(c *gin.Context, babies *store.BabyStore) (*models.Baby, error) {
	babyID, err := uuid.Parse(c.Param("babyId"))
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithMessage("invalid baby id")
	}
	baby, err := babies.GetBaby(c.Request.Context(), babyID)
	if err != nil {
		return nil, err
	}
	userID, ok := middleware.GetAuthUserID(c)
	if !ok {
		return nil, apperr.ErrUnauthorized
	}
	if baby.UserID != userID {
		return nil, apperr.ErrForbidden
	}
	return baby, nil
}

// CreateBaby registers a baby for the authenticated user
func CreateBaby(babies *store.BabyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetAuthUserID(c)
		if !ok {
			writeError(c, apperr.ErrUnauthorized)
			return
		}

		var req models.CreateBabyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}

		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("birth_date must be YYYY-MM-DD"))
			return
		}
		if req.GestationalWeeks != nil && (*req.GestationalWeeks < 20 || *req.GestationalWeeks > 45) {
			writeError(c, apperr.ErrInvalidInput.WithMessage("gestational_weeks must be between 20 and 45"))
			return
		}

		baby := &models.Baby{
			ID:               uuid.New(),
			UserID:           userID,
			Name:             req.Name,
			BirthDate:        birthDate,
			GestationalWeeks: req.GestationalWeeks,
			Gender:           req.Gender,
		}
		if err := babies.Create(c.Request.Context(), baby); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, babyToResponse(baby, time.Now()))
	}
}

// ListBabies returns the authenticated user's babies
func ListBabies(babies *store.BabyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetAuthUserID(c)
		if !ok {
			writeError(c, apperr.ErrUnauthorized)
			return
		}

		list, err := babies.ListByUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}

		now := time.Now()
		out := make([]models.BabyResponse, 0, len(list))
		for i := range list {
			out = append(out, babyToResponse(&list[i], now))
		}
		c.JSON(http.StatusOK, gin.H{"babies": out, "total": len(out)})
	}
}

// GetBaby returns one baby profile
func GetBaby(babies *store.BabyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, babyToResponse(baby, time.Now()))
	}
}

// UpdateBaby updates a baby profile
func UpdateBaby(babies *store.BabyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		var req models.CreateBabyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("birth_date must be YYYY-MM-DD"))
			return
		}

		baby.Name = req.Name
		baby.BirthDate = birthDate
		baby.GestationalWeeks = req.GestationalWeeks
		baby.Gender = req.Gender
		if err := babies.Update(c.Request.Context(), baby); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, babyToResponse(baby, time.Now()))
	}
}

// DeleteBaby removes a baby and all its schedules
func DeleteBaby(babies *store.BabyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := babies.Delete(c.Request.Context(), baby.ID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Baby deleted"})
	}
}
