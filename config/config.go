package config

import (
	"fmt"
	"log"
	"os"

	"github.com/edulizanay/voice-food-logger-ios/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.FoodEntry{},
		&models.UserGoal{},
		&models.WeightEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// NutritionDBPath is where the static per-100g nutrition table lives.
// A missing file is not fatal; local lookups just always miss.
func NutritionDBPath() string {
	if p := os.Getenv("NUTRITION_DB_PATH"); p != "" {
		return p
	}
	return "data/nutrition_db.json"
}
