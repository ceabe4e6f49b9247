package models

// UnitClass classifies a quantity phrase by the kind of measure it carries.
type UnitClass string

const (
	UnitMass   UnitClass = "mass"
	UnitVolume UnitClass = "volume"
	UnitCount  UnitClass = "count"
	UnitVague  UnitClass = "vague"
)

// NutritionSource records which resolution tier produced a macro value.
type NutritionSource string

const (
	SourceRemote   NutritionSource = "usda"
	SourceLocal    NutritionSource = "local_database"
	SourceFallback NutritionSource = "fallback_default"
)

// NormalizedQuantity is the parsed form of a free-text quantity phrase.
// Grams is always positive; unresolvable phrases get a conservative
// non-zero estimate rather than a poisoned zero.
type NormalizedQuantity struct {
	Magnitude   float64   `json:"magnitude"`
	UnitClass   UnitClass `json:"unit_class"`
	Grams       float64   `json:"grams"`
	IsEstimated bool      `json:"is_estimated"`
}

// NutritionPer100g is a reference food's composition for a 100 g serving.
type NutritionPer100g struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ResolvedMacros is per-100g nutrition scaled to an actual quantity,
// tagged with the source that produced it.
type ResolvedMacros struct {
	Calories float64         `json:"calories"`
	ProteinG float64         `json:"protein_g"`
	CarbsG   float64         `json:"carbs_g"`
	FatG     float64         `json:"fat_g"`
	Source   NutritionSource `json:"source"`
}

// FoodItem is one resolved mention of a food: name, raw phrase, normalized
// quantity and scaled macros.
type FoodItem struct {
	FoodName   string             `json:"food"`
	Quantity   string             `json:"quantity"`
	Normalized NormalizedQuantity `json:"normalized"`
	Macros     ResolvedMacros     `json:"macros"`
}

// MacroTotals is the sum of macros over a set of food entries.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}
