package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HWANGJEONGHYEON1/duty-out/internal/catalog"
	"github.com/HWANGJEONGHYEON1/duty-out/internal/store"
)

// GetGuideline returns the sleep and feeding guideline for a baby's
// corrected age
func GetGuideline(babies *store.BabyStore, guidelines *catalog.GuidelineCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		baby, err := ownedBaby(c, babies)
		if err != nil {
			writeError(c, err)
			return
		}

		age := baby.CorrectedAgeInMonths(time.Now())
		g, err := guidelines.Lookup(age)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"age_in_months":            age,
			"guideline_age_in_months":  g.AgeInMonths,
			"wake_window_min_minutes":  g.WakeWindowMinMinutes,
			"wake_window_max_minutes":  g.WakeWindowMaxMinutes,
			"nap_count":                g.NapCount,
			"max_total_nap_minutes":    g.MaxTotalNapMinutes,
			"night_sleep_min_minutes":  g.NightSleepMinMinutes,
			"night_sleep_max_minutes":  g.NightSleepMaxMinutes,
			"recommended_bedtime":      fmt.Sprintf("%02d:%02d", g.BedtimeHour, g.BedtimeMinute),
			"feeding_amount_min_ml":    g.FeedingAmountMinMl,
			"feeding_amount_max_ml":    g.FeedingAmountMaxMl,
			"feeding_interval_minutes": g.FeedingIntervalMinutes,
			"description":              g.Description,
		})
	}
}
