package main

import (
	"github.com/edulizanay/voice-food-logger-ios/config"
	"github.com/edulizanay/voice-food-logger-ios/controllers"
	"github.com/edulizanay/voice-food-logger-ios/routes"
	"github.com/edulizanay/voice-food-logger-ios/services"
)

func main() {
	config.InitDB()

	usda := services.NewUSDAService()
	local := services.LoadLocalTable(config.NutritionDBPath())
	nutrition := services.NewNutritionService(usda, local)

	entrySvc := services.NewEntryService(config.DB, nutrition)
	goalSvc := services.NewGoalService(config.DB)
	weightSvc := services.NewWeightService(config.DB)
	analyticsSvc := services.NewAnalyticsService(config.DB, goalSvc, weightSvc)

	r := routes.SetupRouter(
		controllers.NewEntryController(entrySvc),
		controllers.NewAnalyticsController(analyticsSvc),
		controllers.NewGoalController(goalSvc),
		controllers.NewWeightController(weightSvc, analyticsSvc),
	)
	r.Run(":8080")
}
