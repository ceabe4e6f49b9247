package services

import (
	"errors"
	"testing"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntryService(t *testing.T) *EntryService {
	t.Helper()
	nutrition := NewNutritionService(
		&fakeRemote{err: errors.New("offline")},
		writeTable(t, chickenTable),
	)
	return NewEntryService(nil, nutrition)
}

func TestResolveFoodItem(t *testing.T) {
	svc := testEntryService(t)

	item := svc.ResolveFoodItem("chicken breast", "150g")
	assert.Equal(t, "chicken breast", item.FoodName)
	assert.Equal(t, "150g", item.Quantity)
	assert.Equal(t, 150.0, item.Normalized.Grams)
	assert.False(t, item.Normalized.IsEstimated)
	assert.Equal(t, models.SourceLocal, item.Macros.Source)
	assert.Equal(t, 248.0, item.Macros.Calories)
}

// Items resolve concurrently but the output keeps submission order.
func TestResolveItemsPreservesOrder(t *testing.T) {
	svc := testEntryService(t)

	items := []ItemRequest{
		{Food: "chicken breast", Quantity: "150g"},
		{Food: "rice", Quantity: "half a cup"},
		{Food: "mystery stew", Quantity: "1 bowl"},
		{Food: "chicken thigh", Quantity: "100g"},
	}

	resolved := svc.ResolveItems(items)
	require.Len(t, resolved, 4)
	for i, it := range items {
		assert.Equal(t, it.Food, resolved[i].FoodName)
		assert.Equal(t, it.Quantity, resolved[i].Quantity)
		assert.Greater(t, resolved[i].Normalized.Grams, 0.0)
		assert.NotEmpty(t, resolved[i].Macros.Source)
	}
	assert.Equal(t, models.SourceFallback, resolved[2].Macros.Source)
}

func TestGroupSessions(t *testing.T) {
	lunch := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	dinner := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)

	rows := []models.FoodEntry{
		{SessionID: "s1", FoodName: "chicken breast", AteAt: lunch, Calories: 248},
		{SessionID: "s1", FoodName: "rice", AteAt: lunch, Calories: 103},
		{SessionID: "s2", FoodName: "salmon", AteAt: dinner, Calories: 312},
	}

	sessions := groupSessions(rows)
	require.Len(t, sessions, 2)

	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, MealLunch, sessions[0].MealType)
	require.Len(t, sessions[0].Items, 2)
	assert.Equal(t, "chicken breast", sessions[0].Items[0].FoodName)

	assert.Equal(t, "s2", sessions[1].ID)
	assert.Equal(t, MealDinner, sessions[1].MealType)
	require.Len(t, sessions[1].Items, 1)
}

// Rows logged before sessions existed fall back to their own id.
func TestGroupSessionsLegacyRows(t *testing.T) {
	rows := []models.FoodEntry{
		{FoodName: "banana", AteAt: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)},
	}
	rows[0].ID = 42

	sessions := groupSessions(rows)
	require.Len(t, sessions, 1)
	assert.Equal(t, "42", sessions[0].ID)
	assert.Equal(t, MealBreakfast, sessions[0].MealType)
}

func TestGroupSessionsEmpty(t *testing.T) {
	assert.Empty(t, groupSessions(nil))
}
