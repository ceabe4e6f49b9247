package services

import (
	"context"
	"errors"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/models"
	"github.com/edulizanay/voice-food-logger-ios/utils"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// Add validates and appends a weight entry.
func (s *WeightService) Add(ctx context.Context, weightKg float64, at time.Time) (models.WeightEntry, error) {
	if err := utils.ValidateWeightKg(weightKg); err != nil {
		return models.WeightEntry{}, err
	}
	e := models.WeightEntry{WeightKg: weightKg, CreatedAt: at}
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.WeightEntry{}, err
	}
	return e, nil
}

// ListRange returns entries within [from, to) in ascending order.
func (s *WeightService) ListRange(ctx context.Context, from, to time.Time) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Latest returns the most recent entry, or false when none exist.
func (s *WeightService) Latest(ctx context.Context) (models.WeightEntry, bool, error) {
	var e models.WeightEntry
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WeightEntry{}, false, nil
		}
		return models.WeightEntry{}, false, err
	}
	return e, true, nil
}

// Delete removes one entry by id; false means nothing matched.
func (s *WeightService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.WeightEntry{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
