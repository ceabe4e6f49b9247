package utils

import "fmt"

// Goal and weight write paths reject values outside sane human bounds.
// The resolution pipeline never produces these errors; they belong to
// input validation only.
const (
	MinCalorieGoal = 800
	MaxCalorieGoal = 5000
	MinProteinGoal = 20.0
	MaxProteinGoal = 500.0
	MinWeightKg    = 20.0
	MaxWeightKg    = 300.0
)

func ValidateCalorieGoal(v int) error {
	if v < MinCalorieGoal || v > MaxCalorieGoal {
		return fmt.Errorf("calorie goal must be between %d and %d", MinCalorieGoal, MaxCalorieGoal)
	}
	return nil
}

func ValidateProteinGoal(v float64) error {
	if v < MinProteinGoal || v > MaxProteinGoal {
		return fmt.Errorf("protein goal must be between %.0f and %.0fg", MinProteinGoal, MaxProteinGoal)
	}
	return nil
}

func ValidateWeightKg(v float64) error {
	if v < MinWeightKg || v > MaxWeightKg {
		return fmt.Errorf("weight must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg)
	}
	return nil
}
