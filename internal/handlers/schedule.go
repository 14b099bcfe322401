package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/apperr"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/models"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/scheduler"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/store"
)

// parseDate parses a YYYY-MM-DD value, defaulting to today when empty.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

// GenerateSchedule builds and stores the daily schedule for a baby
func GenerateSchedule(babies *store.BabyStore, svc *scheduler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		var req models.GenerateScheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}

		date, err := parseDate(req.ScheduleDate)
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("schedule_date must be YYYY-MM-DD"))
			return
		}
		wakeUp, err := models.ParseTimeOfDay(req.WakeUpTime)
		if err != nil {
			writeError(c, apperr.ErrInvalidWakeTime.WithMessage("wake_up_time must be HH:MM"))
			return
		}
		strategy, err := scheduler.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage(err.Error()))
			return
		}

		schedule, err := svc.Generate(c.Request.Context(), baby.ID, date, wakeUp, strategy)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.NewDailyScheduleResponse(schedule, nil))
	}
}

// GetSchedule returns the stored schedule for a baby and date
func GetSchedule(babies *store.BabyStore, svc *scheduler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		date, err := parseDate(c.Query("date"))
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("date must be YYYY-MM-DD"))
			return
		}

		schedule, err := svc.GetSchedule(c.Request.Context(), baby.ID, date)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.NewDailyScheduleResponse(schedule, nil))
	}
}

// AdjustSchedule records an observed outcome and reflows the rest of the day
func AdjustSchedule(babies *store.BabyStore, svc *scheduler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		var req models.AdjustScheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}

		date, err := parseDate(req.ScheduleDate)
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("schedule_date must be YYYY-MM-DD"))
			return
		}

		outcome, err := outcomeFromRequest(&req)
		if err != nil {
			writeError(c, err)
			return
		}

		schedule, warnings, err := svc.Adjust(c.Request.Context(), baby.ID, date, req.ScheduleItemID, outcome)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.NewDailyScheduleResponse(schedule, warnings))
	}
}

func outcomeFromRequest(req *models.AdjustScheduleRequest) (scheduler.Outcome, error) {
	var outcome scheduler.Outcome
	if req.ActualStartTime != nil {
		t, err := models.ParseTimeOfDay(*req.ActualStartTime)
		if err != nil {
			return outcome, apperr.ErrInvalidInput.WithMessage("actual_start_time must be HH:MM")
		}
		outcome.ActualStartTime = &t
	}
	if req.ActualEndTime != nil {
		t, err := models.ParseTimeOfDay(*req.ActualEndTime)
		if err != nil {
			return outcome, apperr.ErrInvalidInput.WithMessage("actual_end_time must be HH:MM")
		}
		outcome.ActualEndTime = &t
	}
	outcome.ActualDurationMinutes = req.ActualDurationMinutes
	return outcome, nil
}

// UpdateScheduleItem records a feeding amount, a new time, or an actual
// sleep duration on one item
func UpdateScheduleItem(babies *store.BabyStore, svc *scheduler.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		itemID, err := uuid.Parse(c.Param("itemId"))
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("invalid item id"))
			return
		}

		var req models.UpdateScheduleItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "COMMON_001", "details": err.Error()})
			return
		}

		date, err := parseDate(c.Query("date"))
		if err != nil {
			writeError(c, apperr.ErrInvalidInput.WithMessage("date must be YYYY-MM-DD"))
			return
		}

		schedule, warnings, err := svc.UpdateItem(c.Request.Context(), baby.ID, date, itemID, req)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.NewDailyScheduleResponse(schedule, warnings))
	}
}
