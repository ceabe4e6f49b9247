package controllers

import (
	"net/http"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

var validPeriods = map[string]bool{
	services.PeriodToday: true,
	services.PeriodWeek:  true,
	services.PeriodMonth: true,
}

func periodParam(c *gin.Context) (string, bool) {
	period := c.DefaultQuery("period", services.PeriodWeek)
	if !validPeriods[period] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid period. Must be one of: today, week, month",
		})
		return "", false
	}
	return period, true
}

// DailyTotals returns the macro sums for one day, today by default.
func (h *AnalyticsController) DailyTotals(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	totals, err := h.Svc.DailyTotals(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": totals})
}

// CalorieHistory returns the zero-filled per-day series for a period.
func (h *AnalyticsController) CalorieHistory(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	history, err := h.Svc.CalorieHistory(c.Request.Context(), period, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    history,
		"period":  period,
		"count":   len(history),
	})
}

// TodayProgress returns today's intake against the current calorie
// goal: remaining calories, percentage consumed and the over flag.
func (h *AnalyticsController) TodayProgress(c *gin.Context) {
	progress, err := h.Svc.TodayProgressFor(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": progress})
}

// CalorieSummary returns goal-adherence statistics for a period.
func (h *AnalyticsController) CalorieSummary(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	summary, err := h.Svc.CalorieSummaryFor(c.Request.Context(), period, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
