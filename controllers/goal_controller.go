package controllers

import (
	"net/http"

	"github.com/edulizanay/voice-food-logger-ios/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

func (h *GoalController) GetGoals(c *gin.Context) {
	goals, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": goals})
}

func (h *GoalController) UpdateGoals(c *gin.Context) {
	var body services.GoalUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.Svc.Upsert(c.Request.Context(), body)
	if err != nil {
		// validation failure, not a server fault
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Goals updated successfully",
		"data":    goals,
	})
}
