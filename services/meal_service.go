package services

import "time"

// Meal type names stored on sessions.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// ClassifyMealTime maps a timestamp to a meal category by fixed
// time-of-day windows. Only the hour matters; the windows cover all 24
// hours with no gaps:
//
//	05:00-10:59 breakfast
//	11:00-14:59 lunch
//	15:00-17:59 snack
//	18:00-21:59 dinner
//	22:00-04:59 snack
func ClassifyMealTime(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 11:
		return MealBreakfast
	case hour >= 11 && hour < 15:
		return MealLunch
	case hour >= 15 && hour < 18:
		return MealSnack
	case hour >= 18 && hour < 22:
		return MealDinner
	default:
		return MealSnack
	}
}
