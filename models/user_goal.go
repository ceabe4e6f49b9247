package models

import "time"

// UserGoal holds the single user's targets. One row, upserted in place;
// UpdatedAt versions the snapshot used for chart overlays.
type UserGoal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CalorieGoal  int       `json:"calorie_goal"`
	ProteinGoal  float64   `json:"protein_goal"`
	WeightGoalKg float64   `json:"weight_goal_kg"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
