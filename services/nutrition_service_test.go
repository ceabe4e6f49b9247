package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edulizanay/voice-food-logger-ios/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	foods []FoodRecord
	err   error
}

func (f *fakeRemote) Search(query string) ([]FoodRecord, error) {
	return f.foods, f.err
}

func writeTable(t *testing.T, content string) *LocalTable {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrition_db.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return LoadLocalTable(path)
}

const chickenTable = `{
  "chicken breast": {"calories": 165, "protein_g": 31, "carbs_g": 0, "fat_g": 3.6},
  "chicken thigh": {"calories": 209, "protein_g": 26, "carbs_g": 0, "fat_g": 10.9},
  "rice": {"calories": 130, "protein_g": 2.7, "carbs_g": 28, "fat_g": 0.3}
}`

func TestResolveRemoteSuccess(t *testing.T) {
	remote := &fakeRemote{foods: []FoodRecord{{
		Description: "Chicken, broilers or fryers, breast, raw",
		FoodNutrients: []FoodNutrient{
			{NutrientNumber: "208", Value: 120},
			{NutrientNumber: "203", Value: 22.5},
			{NutrientNumber: "204", Value: 2.6},
			{NutrientNumber: "205", Value: 0},
		},
	}}}
	svc := NewNutritionService(remote, writeTable(t, chickenTable))

	got := svc.Resolve("chicken breast", 200)
	assert.Equal(t, models.SourceRemote, got.Source)
	assert.Equal(t, 240.0, got.Calories)
	assert.Equal(t, 45.0, got.ProteinG)
	assert.Equal(t, 5.2, got.FatG)
	assert.Equal(t, 0.0, got.CarbsG)
}

func TestResolveFallsToLocalOnRemoteError(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection refused")}
	svc := NewNutritionService(remote, writeTable(t, chickenTable))

	got := svc.Resolve("chicken breast", 150)
	assert.Equal(t, models.SourceLocal, got.Source)
	assert.Equal(t, 248.0, got.Calories)
	assert.Equal(t, 46.5, got.ProteinG)
	assert.Equal(t, 0.0, got.CarbsG)
	assert.Equal(t, 5.4, got.FatG)
}

func TestResolveFallsToLocalOnEmptyResults(t *testing.T) {
	svc := NewNutritionService(&fakeRemote{}, writeTable(t, chickenTable))

	got := svc.Resolve("rice", 100)
	assert.Equal(t, models.SourceLocal, got.Source)
	assert.Equal(t, 130.0, got.Calories)
}

func TestResolveFallsToLocalWhenNutrientCodesMissing(t *testing.T) {
	remote := &fakeRemote{foods: []FoodRecord{{
		Description:   "Rice, white, raw",
		FoodNutrients: []FoodNutrient{{NutrientNumber: "999", Value: 42}},
	}}}
	svc := NewNutritionService(remote, writeTable(t, chickenTable))

	got := svc.Resolve("rice", 100)
	assert.Equal(t, models.SourceLocal, got.Source)
}

func TestResolveFallbackDefault(t *testing.T) {
	remote := &fakeRemote{err: errors.New("timeout")}
	svc := NewNutritionService(remote, writeTable(t, chickenTable))

	got := svc.Resolve("mystery stew", 200)
	assert.Equal(t, models.SourceFallback, got.Source)
	assert.Equal(t, 300.0, got.Calories)
	assert.Equal(t, 40.0, got.ProteinG)
	assert.Equal(t, 20.0, got.CarbsG)
	assert.Equal(t, 10.0, got.FatG)
}

// Resolution never raises and always carries a provenance tag.
func TestResolveAlwaysTagged(t *testing.T) {
	svc := NewNutritionService(&fakeRemote{err: errors.New("down")}, LoadLocalTable("does-not-exist.json"))

	for _, name := range []string{"chicken", "", "???", "mystery"} {
		got := svc.Resolve(name, 50)
		assert.Equal(t, models.SourceFallback, got.Source, "food %q", name)
	}
}

func TestLocalTableExactMatch(t *testing.T) {
	table := writeTable(t, chickenTable)

	per, ok := table.Lookup("Chicken Breast")
	require.True(t, ok)
	assert.Equal(t, 165.0, per.Calories)
}

// Substring matches resolve in table order: a query matching several
// keys takes the first textual hit, not the best one.
func TestLocalTableSubstringMatchIsTableOrdered(t *testing.T) {
	table := writeTable(t, chickenTable)

	per, ok := table.Lookup("chicken")
	require.True(t, ok)
	assert.Equal(t, 165.0, per.Calories, "should match 'chicken breast', the first key")

	// query longer than key matches too
	per, ok = table.Lookup("fried rice leftovers")
	require.True(t, ok)
	assert.Equal(t, 130.0, per.Calories)
}

func TestLoadLocalTableMissingFile(t *testing.T) {
	table := LoadLocalTable(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 0, table.Len())

	_, ok := table.Lookup("chicken")
	assert.False(t, ok)
}

func TestLoadLocalTableCorruptFile(t *testing.T) {
	table := writeTable(t, `{"chicken": not valid json`)
	assert.Equal(t, 0, table.Len())
}

func TestScaleMacrosRounding(t *testing.T) {
	per := models.NutritionPer100g{Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6}

	tests := []struct {
		grams    float64
		calories float64
		protein  float64
		fat      float64
	}{
		{100, 165, 31, 3.6},
		{150, 248, 46.5, 5.4}, // 247.5 rounds up after scaling
		{33, 54, 10.2, 1.2},
		{1, 2, 0.3, 0},
	}
	for _, tt := range tests {
		got := ScaleMacros(per, tt.grams)
		assert.Equal(t, tt.calories, got.Calories, "grams=%v", tt.grams)
		assert.Equal(t, tt.protein, got.ProteinG, "grams=%v", tt.grams)
		assert.Equal(t, tt.fat, got.FatG, "grams=%v", tt.grams)
	}
}
