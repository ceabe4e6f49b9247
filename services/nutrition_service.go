package services

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"strings"

	"github.com/edulizanay/voice-food-logger-ios/models"
)

// RemoteSource is the food-database dependency of the resolution chain.
// The production implementation is USDAService; tests substitute a fake.
type RemoteSource interface {
	Search(query string) ([]FoodRecord, error)
}

// LocalTable is the static name -> per-100g nutrition mapping. Key order
// is preserved from the data file: substring matches take the first
// textual hit in table order, which keeps lookups deterministic.
type LocalTable struct {
	keys    []string
	entries map[string]models.NutritionPer100g
}

// LoadLocalTable reads the nutrition table from a JSON file. A missing
// or corrupt file degrades to an empty table; local lookups then always
// miss and resolution falls through to the mass-based default.
func LoadLocalTable(path string) *LocalTable {
	t := &LocalTable{entries: map[string]models.NutritionPer100g{}}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("nutrition table not found at %s, local lookups disabled", path)
		return t
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if _, err := dec.Token(); err != nil { // opening brace
		log.Printf("invalid nutrition table at %s: %v", path, err)
		return t
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			log.Printf("invalid nutrition table at %s: %v", path, err)
			return &LocalTable{entries: map[string]models.NutritionPer100g{}}
		}
		key := strings.ToLower(tok.(string))
		var per models.NutritionPer100g
		if err := dec.Decode(&per); err != nil {
			log.Printf("invalid nutrition table at %s: %v", path, err)
			return &LocalTable{entries: map[string]models.NutritionPer100g{}}
		}
		t.keys = append(t.keys, key)
		t.entries[key] = per
	}
	return t
}

// Lookup tries an exact match, then a bidirectional substring match in
// table order.
func (t *LocalTable) Lookup(name string) (models.NutritionPer100g, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if per, ok := t.entries[q]; ok {
		return per, true
	}
	for _, k := range t.keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return t.entries[k], true
		}
	}
	return models.NutritionPer100g{}, false
}

func (t *LocalTable) Len() int { return len(t.keys) }

// NutritionService resolves a food name to absolute macros through a
// linear fallback chain: remote database, local table, mass-based
// default. It never fails; failures downgrade the source tag instead.
type NutritionService struct {
	remote RemoteSource
	local  *LocalTable
}

func NewNutritionService(remote RemoteSource, local *LocalTable) *NutritionService {
	return &NutritionService{remote: remote, local: local}
}

// Resolve returns macros for grams of the named food, tagged with the
// tier that produced them.
func (s *NutritionService) Resolve(name string, grams float64) models.ResolvedMacros {
	if s.remote != nil {
		foods, err := s.remote.Search(name)
		if err != nil {
			log.Printf("remote lookup failed for %q: %v", name, err)
		} else if len(foods) > 0 {
			if per, ok := perHundredGrams(foods[0]); ok {
				m := ScaleMacros(per, grams)
				m.Source = models.SourceRemote
				return m
			}
			log.Printf("remote result for %q missing nutrient codes", name)
		}
	}

	if per, ok := s.local.Lookup(name); ok {
		m := ScaleMacros(per, grams)
		m.Source = models.SourceLocal
		return m
	}

	// Rough mass-proportional estimate. A zeroed record for every
	// unrecognized food would be worse than a conservative guess.
	return models.ResolvedMacros{
		Calories: math.Round(grams * 1.5),
		ProteinG: round1(grams * 0.2),
		CarbsG:   round1(grams * 0.1),
		FatG:     round1(grams * 0.05),
		Source:   models.SourceFallback,
	}
}

// ScaleMacros scales per-100g nutrition to an absolute gram quantity.
// Calories round to the nearest integer, macros to one decimal, after
// scaling. Pure; callers supply validated quantities.
func ScaleMacros(per models.NutritionPer100g, grams float64) models.ResolvedMacros {
	f := grams / 100.0
	return models.ResolvedMacros{
		Calories: math.Round(per.Calories * f),
		ProteinG: round1(per.ProteinG * f),
		CarbsG:   round1(per.CarbsG * f),
		FatG:     round1(per.FatG * f),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
