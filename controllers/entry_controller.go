package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Svc *services.EntryService
}

func NewEntryController(svc *services.EntryService) *EntryController {
	return &EntryController{Svc: svc}
}

// LogEntry accepts already-segmented {food, quantity} pairs and runs
// them through the resolution pipeline. Transcription and segmentation
// happen upstream of this API.
func (h *EntryController) LogEntry(c *gin.Context) {
	var body struct {
		AteAt *time.Time             `json:"ate_at"`
		Items []services.ItemRequest `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ateAt := time.Now()
	if body.AteAt != nil {
		ateAt = *body.AteAt
	}

	session, err := h.Svc.LogEntry(c.Request.Context(), body.Items, ateAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": session})
}

// ListEntries returns the sessions of one day, today by default.
func (h *EntryController) ListEntries(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	sessions, err := h.Svc.EntriesByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sessions, "count": len(sessions)})
}

// UpdateItem re-resolves one stored item against a new quantity phrase.
func (h *EntryController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var body struct {
		Quantity string `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.Svc.UpdateItemQuantity(c.Request.Context(), uint(id), body.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEntry removes a session (or a single legacy item) by id.
func (h *EntryController) DeleteEntry(c *gin.Context) {
	ok, err := h.Svc.DeleteEntry(c.Request.Context(), c.Param("id"))
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
