package models

import "time"

// WeightEntry is an append-only body-weight record.
type WeightEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
