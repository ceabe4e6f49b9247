package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewEntryService(db *gorm.DB, nutrition *NutritionService) *EntryService {
	return &EntryService{db: db, nutrition: nutrition}
}

// ItemRequest is one already-segmented food mention: a name plus the
// raw quantity phrase. Segmentation happens upstream.
type ItemRequest struct {
	Food     string `json:"food" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// ResolveFoodItem runs the full pipeline for one mention: quantity
// normalization, source-chain lookup, macro scaling.
func (s *EntryService) ResolveFoodItem(food, quantityPhrase string) models.FoodItem {
	n := NormalizeQuantity(quantityPhrase)
	return models.FoodItem{
		FoodName:   food,
		Quantity:   quantityPhrase,
		Normalized: n,
		Macros:     s.nutrition.Resolve(food, n.Grams),
	}
}

// ResolveItems resolves every item of a submission. Items are
// independent, so lookups run concurrently; output order matches input
// order.
func (s *EntryService) ResolveItems(items []ItemRequest) []models.FoodItem {
	out := make([]models.FoodItem, len(items))
	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func(i int, it ItemRequest) {
			defer wg.Done()
			out[i] = s.ResolveFoodItem(it.Food, it.Quantity)
		}(i, it)
	}
	wg.Wait()
	return out
}

// LogEntry resolves and persists one submission. Every item gets its
// own row sharing a generated session id; the session is the unit of
// delete.
func (s *EntryService) LogEntry(ctx context.Context, items []ItemRequest, ateAt time.Time) (*models.Session, error) {
	resolved := s.ResolveItems(items)
	sessionID := uuid.NewString()

	for _, it := range resolved {
		row := models.FoodEntry{
			SessionID: sessionID,
			FoodName:  it.FoodName,
			Quantity:  it.Quantity,
			Grams:     it.Normalized.Grams,
			UnitClass: string(it.Normalized.UnitClass),
			Estimated: it.Normalized.IsEstimated,
			Calories:  it.Macros.Calories,
			Protein:   it.Macros.ProteinG,
			Carbs:     it.Macros.CarbsG,
			Fat:       it.Macros.FatG,
			Source:    string(it.Macros.Source),
			AteAt:     ateAt,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
	}

	return &models.Session{
		ID:        sessionID,
		Timestamp: ateAt,
		MealType:  ClassifyMealTime(ateAt),
		Items:     resolved,
	}, nil
}

// EntriesByDate returns the day's sessions in the order they were
// recorded, items grouped back under their session id.
func (s *EntryService) EntriesByDate(ctx context.Context, date time.Time) ([]models.Session, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var rows []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("ate_at >= ? AND ate_at < ?", start, end).
		Order("ate_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupSessions(rows), nil
}

// groupSessions folds rows into sessions, preserving first-seen order.
func groupSessions(rows []models.FoodEntry) []models.Session {
	sessions := make([]models.Session, 0)
	index := map[string]int{}

	for _, r := range rows {
		sid := r.SessionID
		if sid == "" {
			// legacy rows logged before sessions existed
			sid = strconv.FormatUint(uint64(r.ID), 10)
		}
		i, ok := index[sid]
		if !ok {
			i = len(sessions)
			index[sid] = i
			sessions = append(sessions, models.Session{
				ID:        sid,
				Timestamp: r.AteAt,
				MealType:  ClassifyMealTime(r.AteAt),
			})
		}
		sessions[i].Items = append(sessions[i].Items, models.FoodItem{
			FoodName: r.FoodName,
			Quantity: r.Quantity,
			Normalized: models.NormalizedQuantity{
				UnitClass:   models.UnitClass(r.UnitClass),
				Grams:       r.Grams,
				IsEstimated: r.Estimated,
			},
			Macros: models.ResolvedMacros{
				Calories: r.Calories,
				ProteinG: r.Protein,
				CarbsG:   r.Carbs,
				FatG:     r.Fat,
				Source:   models.NutritionSource(r.Source),
			},
		})
	}
	return sessions
}

// UpdateItemQuantity re-runs the whole pipeline for one stored item. A
// new phrase can change the unit class, so rescaling the old macros
// would not be enough. Returns false when the item does not exist.
func (s *EntryService) UpdateItemQuantity(ctx context.Context, itemID uint, quantityPhrase string) (bool, error) {
	var row models.FoodEntry
	if err := s.db.WithContext(ctx).First(&row, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	it := s.ResolveFoodItem(row.FoodName, quantityPhrase)
	row.Quantity = it.Quantity
	row.Grams = it.Normalized.Grams
	row.UnitClass = string(it.Normalized.UnitClass)
	row.Estimated = it.Normalized.IsEstimated
	row.Calories = it.Macros.Calories
	row.Protein = it.Macros.ProteinG
	row.Carbs = it.Macros.CarbsG
	row.Fat = it.Macros.FatG
	row.Source = string(it.Macros.Source)

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEntry removes a whole session by id, falling back to a single
// item row when the id is numeric. Returns false when nothing matched.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&models.FoodEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	itemID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return false, nil
	}
	res = s.db.WithContext(ctx).Delete(&models.FoodEntry{}, itemID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
