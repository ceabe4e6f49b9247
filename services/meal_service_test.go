package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
}

func TestClassifyMealTimeBoundaries(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{5, 0, MealBreakfast},
		{10, 59, MealBreakfast},
		{11, 0, MealLunch},
		{14, 59, MealLunch},
		{15, 0, MealSnack},
		{17, 59, MealSnack},
		{18, 0, MealDinner},
		{21, 59, MealDinner},
		{22, 0, MealSnack},
		{4, 59, MealSnack},
		{0, 0, MealSnack},
	}
	for _, tt := range tests {
		got := ClassifyMealTime(at(tt.hour, tt.minute))
		assert.Equal(t, tt.want, got, "%02d:%02d", tt.hour, tt.minute)
	}
}

// Every hour of the day must map to exactly one category.
func TestClassifyMealTimeCoversAllHours(t *testing.T) {
	counts := map[string]int{}
	for hour := 0; hour < 24; hour++ {
		mealType := ClassifyMealTime(at(hour, 30))
		assert.Contains(t, []string{MealBreakfast, MealLunch, MealDinner, MealSnack}, mealType)
		counts[mealType]++
	}
	assert.Equal(t, 6, counts[MealBreakfast]) // 05-10
	assert.Equal(t, 4, counts[MealLunch])     // 11-14
	assert.Equal(t, 4, counts[MealDinner])    // 18-21
	assert.Equal(t, 10, counts[MealSnack])    // 15-17 and 22-04
}

// Minutes and seconds never change the category.
func TestClassifyMealTimeIgnoresMinutes(t *testing.T) {
	assert.Equal(t, ClassifyMealTime(at(10, 0)), ClassifyMealTime(at(10, 59)))
	assert.Equal(t, ClassifyMealTime(at(21, 0)), ClassifyMealTime(at(21, 59)))
}
