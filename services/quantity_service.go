package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edulizanay/voice-food-logger-ios/models"
)

// unitRule maps a quantity-phrase pattern to a unit class and the grams
// one unit of it represents. Rules are evaluated in order; the first
// match wins, so "kilogram" is tested before "gram" and explicit units
// before countable-food names.
type unitRule struct {
	pattern   *regexp.Regexp
	class     models.UnitClass
	gramsPer  float64
	exactMass bool // metric mass stated verbatim counts as exact
}

var unitRules = []unitRule{
	{regexp.MustCompile(`kilo(gram)?s?\b|\bkgs?\b|\dkg\b`), models.UnitMass, 1000, true},
	{regexp.MustCompile(`grams?\b|\dg\b|\bg\b`), models.UnitMass, 1, true},
	{regexp.MustCompile(`cups?\b`), models.UnitVolume, 150, false},
	{regexp.MustCompile(`tablespoons?\b|tbsp\b`), models.UnitVolume, 15, false},
	{regexp.MustCompile(`teaspoons?\b|tsp\b`), models.UnitVolume, 5, false},
	{regexp.MustCompile(`scoops?\b`), models.UnitVolume, 30, false},
	{regexp.MustCompile(`milliliters?\b|\bml\b|\dml\b`), models.UnitVolume, 1, false},
}

// imperialRules are consulted only after the countable checks so that
// "2 pieces of pound cake" counts pieces instead of weighing pounds.
var imperialRules = []unitRule{
	{regexp.MustCompile(`pounds?\b|\blbs?\b`), models.UnitMass, 453.6, false},
	{regexp.MustCompile(`ounces?\b|\boz\b|\doz\b`), models.UnitMass, 28.35, false},
}

// handfulGrams is the rough weight of one handful (nuts, berries).
const handfulGrams = 28

var handfulPattern = regexp.MustCompile(`handfuls?\b`)

// pieceGrams gives typical per-unit weights for common countable foods,
// consulted before the generic per-piece default so "2 eggs" lands on a
// physical quantity instead of a serving multiple.
var pieceGrams = []struct {
	pattern *regexp.Regexp
	grams   float64
}{
	{regexp.MustCompile(`eggs?\b`), 50},
	{regexp.MustCompile(`almonds?\b`), 1.5},
	{regexp.MustCompile(`slices?\b`), 30},
	{regexp.MustCompile(`bananas?\b`), 118},
	{regexp.MustCompile(`apples?\b`), 182},
}

var piecePattern = regexp.MustCompile(`pieces?\b|servings?\b|not specified`)

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// NormalizeQuantity parses a free-form quantity phrase into a magnitude,
// unit class and gram equivalent. It is total: any non-empty input yields
// grams > 0, degrading through approximation tables when the phrase
// carries no explicit measure.
func NormalizeQuantity(phrase string) models.NormalizedQuantity {
	p := strings.ToLower(strings.TrimSpace(phrase))

	magnitude, explicit := parseMagnitude(p)
	if magnitude <= 0 {
		// Zero is invalid input; clamp rather than poison downstream
		// scaling with zero grams.
		magnitude = 1.0
	}

	for _, r := range unitRules {
		if r.pattern.MatchString(p) {
			return models.NormalizedQuantity{
				Magnitude:   magnitude,
				UnitClass:   r.class,
				Grams:       magnitude * r.gramsPer,
				IsEstimated: !(r.exactMass && explicit),
			}
		}
	}

	if handfulPattern.MatchString(p) {
		return models.NormalizedQuantity{
			Magnitude:   magnitude,
			UnitClass:   models.UnitCount,
			Grams:       magnitude * handfulGrams,
			IsEstimated: true,
		}
	}

	for _, pg := range pieceGrams {
		if pg.pattern.MatchString(p) {
			return models.NormalizedQuantity{
				Magnitude:   magnitude,
				UnitClass:   models.UnitCount,
				Grams:       magnitude * pg.grams,
				IsEstimated: !explicit,
			}
		}
	}

	if piecePattern.MatchString(p) {
		return models.NormalizedQuantity{
			Magnitude:   magnitude,
			UnitClass:   models.UnitCount,
			Grams:       magnitude * 100,
			IsEstimated: true,
		}
	}

	for _, r := range imperialRules {
		if r.pattern.MatchString(p) {
			return models.NormalizedQuantity{
				Magnitude:   magnitude,
				UnitClass:   r.class,
				Grams:       magnitude * r.gramsPer,
				IsEstimated: true,
			}
		}
	}

	// No unit signal at all: treat the bare number as per-100g multiples.
	// Unusual, but kept for compatibility with historical records.
	return models.NormalizedQuantity{
		Magnitude:   magnitude,
		UnitClass:   models.UnitVague,
		Grams:       magnitude * 100,
		IsEstimated: true,
	}
}

// parseMagnitude finds the first numeric token, falling back to word
// fractions and finally to 1.0 ("a banana", "some rice"). The bool
// reports whether an explicit number was present.
func parseMagnitude(p string) (float64, bool) {
	if m := numberPattern.FindString(p); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, true
		}
	}
	if n, ok := wordNumber(p); ok {
		return n, true
	}
	if strings.Contains(p, "half") {
		return 0.5, false
	}
	if strings.Contains(p, "quarter") {
		return 0.25, false
	}
	return 1.0, false
}

var wordNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"dozen": 12,
}

// wordNumber handles small spelled-out counts the segmenter sometimes
// passes through verbatim ("two eggs", "five almonds").
func wordNumber(p string) (float64, bool) {
	for _, f := range strings.Fields(p) {
		if n, ok := wordNumbers[strings.Trim(f, ",.")]; ok {
			return n, true
		}
	}
	return 0, false
}
