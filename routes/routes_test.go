package routes

import (
	"testing"

	"github.com/edulizanay/voice-food-logger-ios/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouterRegistersAllRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(
		controllers.NewEntryController(nil),
		controllers.NewAnalyticsController(nil),
		controllers.NewGoalController(nil),
		controllers.NewWeightController(nil, nil),
	)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /health",
		"POST /api/entries",
		"GET /api/entries",
		"PUT /api/entries/items/:id",
		"DELETE /api/entries/:id",
		"GET /api/daily-totals",
		"GET /api/calorie-history",
		"GET /api/calorie-history/today",
		"GET /api/calorie-history/summary",
		"GET /api/user-goals",
		"POST /api/user-goals",
		"GET /api/weight-entries",
		"POST /api/weight-entries",
		"DELETE /api/weight-entries/:id",
		"GET /api/weight-history",
		"GET /api/weight-history/latest",
		"GET /api/weight-history/summary",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
