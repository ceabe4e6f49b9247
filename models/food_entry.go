package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one logged food item. Items recorded in the same
// submission share a SessionID; the session is the unit of delete.
type FoodEntry struct {
	gorm.Model
	SessionID string `gorm:"type:varchar(36);index;not null"`
	FoodName  string `gorm:"not null"`
	Quantity  string // raw phrase, e.g. "150g", "a handful"
	Grams     float64
	UnitClass string `gorm:"size:16"`
	Estimated bool

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Source   string `gorm:"size:32"` // usda | local_database | fallback_default

	AteAt time.Time `gorm:"index;not null"`
}

// Session groups the entries of one recording event for API responses.
// It is derived from FoodEntry rows, never stored.
type Session struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	MealType  string     `json:"meal_type"`
	Items     []FoodItem `json:"items"`
}
