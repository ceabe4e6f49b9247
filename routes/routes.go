package routes

import (
	"net/http"

	"github.com/edulizanay/voice-food-logger-ios/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	entries *controllers.EntryController,
	analytics *controllers.AnalyticsController,
	goals *controllers.GoalController,
	weights *controllers.WeightController,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/entries", entries.LogEntry)
		api.GET("/entries", entries.ListEntries)
		api.PUT("/entries/items/:id", entries.UpdateItem)
		api.DELETE("/entries/:id", entries.DeleteEntry)

		api.GET("/daily-totals", analytics.DailyTotals)
		api.GET("/calorie-history", analytics.CalorieHistory)
		api.GET("/calorie-history/today", analytics.TodayProgress)
		api.GET("/calorie-history/summary", analytics.CalorieSummary)

		api.GET("/user-goals", goals.GetGoals)
		api.POST("/user-goals", goals.UpdateGoals)

		api.GET("/weight-entries", weights.ListEntries)
		api.POST("/weight-entries", weights.AddEntry)
		api.DELETE("/weight-entries/:id", weights.DeleteEntry)
		api.GET("/weight-history", weights.History)
		api.GET("/weight-history/latest", weights.Latest)
		api.GET("/weight-history/summary", weights.Summary)
	}

	return r
}
