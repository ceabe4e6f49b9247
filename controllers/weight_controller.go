package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	Svc       *services.WeightService
	Analytics *services.AnalyticsService
}

func NewWeightController(svc *services.WeightService, analytics *services.AnalyticsService) *WeightController {
	return &WeightController{Svc: svc, Analytics: analytics}
}

func (h *WeightController) AddEntry(c *gin.Context) {
	var body struct {
		WeightKg  float64    `json:"weight_kg" binding:"required"`
		CreatedAt *time.Time `json:"created_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	at := time.Now()
	if body.CreatedAt != nil {
		at = *body.CreatedAt
	}

	entry, err := h.Svc.Add(c.Request.Context(), body.WeightKg, at)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

func (h *WeightController) ListEntries(c *gin.Context) {
	from, to := services.PeriodRange(services.PeriodMonth, time.Now())
	if v := c.Query("start_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		from = parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		to = parsed
	}

	entries, err := h.Svc.ListRange(c.Request.Context(), from, to.Add(24*time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries, "count": len(entries)})
}

func (h *WeightController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	ok, err := h.Svc.Delete(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WeightController) History(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}

	history, err := h.Analytics.WeightHistory(c.Request.Context(), period, time.Now())
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

func (h *WeightController) Latest(c *gin.Context) {
	entry, found, err := h.Svc.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "message": "No weight entries found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

func (h *WeightController) Summary(c *gin.Context) {
	summary, err := h.Analytics.WeightSummaryFor(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
