package services

import (
	"context"
	"errors"

	"github.com/edulizanay/voice-food-logger-ios/models"
	"github.com/edulizanay/voice-food-logger-ios/utils"

	"gorm.io/gorm"
)

// Defaults used until the user sets their own goals.
const (
	DefaultCalorieGoal  = 1800
	DefaultProteinGoal  = 160.0
	DefaultWeightGoalKg = 70.0
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Current returns the goal row, or the defaults when none has been set
// yet. Chart overlays take whatever this returns at query time.
func (s *GoalService) Current(ctx context.Context) (models.UserGoal, error) {
	var g models.UserGoal
	err := s.db.WithContext(ctx).Order("updated_at DESC").First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserGoal{
				CalorieGoal:  DefaultCalorieGoal,
				ProteinGoal:  DefaultProteinGoal,
				WeightGoalKg: DefaultWeightGoalKg,
			}, nil
		}
		return models.UserGoal{}, err
	}
	return g, nil
}

// GoalUpdate carries the writable goal fields; nil means keep the
// stored value.
type GoalUpdate struct {
	CalorieGoal  *int     `json:"calorie_goal"`
	ProteinGoal  *float64 `json:"protein_goal"`
	WeightGoalKg *float64 `json:"weight_goal_kg"`
}

// Upsert validates and writes the singleton goal row. Out-of-bounds
// values are rejected before anything is stored.
func (s *GoalService) Upsert(ctx context.Context, upd GoalUpdate) (models.UserGoal, error) {
	if upd.CalorieGoal != nil {
		if err := utils.ValidateCalorieGoal(*upd.CalorieGoal); err != nil {
			return models.UserGoal{}, err
		}
	}
	if upd.ProteinGoal != nil {
		if err := utils.ValidateProteinGoal(*upd.ProteinGoal); err != nil {
			return models.UserGoal{}, err
		}
	}
	if upd.WeightGoalKg != nil {
		if err := utils.ValidateWeightKg(*upd.WeightGoalKg); err != nil {
			return models.UserGoal{}, err
		}
	}

	var g models.UserGoal
	err := s.db.WithContext(ctx).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = models.UserGoal{
			CalorieGoal:  DefaultCalorieGoal,
			ProteinGoal:  DefaultProteinGoal,
			WeightGoalKg: DefaultWeightGoalKg,
		}
	} else if err != nil {
		return models.UserGoal{}, err
	}

	if upd.CalorieGoal != nil {
		g.CalorieGoal = *upd.CalorieGoal
	}
	if upd.ProteinGoal != nil {
		g.ProteinGoal = *upd.ProteinGoal
	}
	if upd.WeightGoalKg != nil {
		g.WeightGoalKg = *upd.WeightGoalKg
	}

	if err := s.db.WithContext(ctx).Save(&g).Error; err != nil {
		return models.UserGoal{}, err
	}
	return g, nil
}
