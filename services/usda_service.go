package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/edulizanay/voice-food-logger-ios/models"
)

// FoodRecord is one search hit from the remote food database: a
// description plus its per-100g nutrient list.
type FoodRecord struct {
	Description   string         `json:"description"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

type FoodNutrient struct {
	NutrientNumber string  `json:"nutrientNumber"`
	Value          float64 `json:"value"`
}

// Nutrient numbers in USDA FoodData Central responses.
const (
	nutrientEnergy  = "208" // Energy (kcal)
	nutrientProtein = "203" // Protein (g)
	nutrientFat     = "204" // Total lipid (fat) (g)
	nutrientCarbs   = "205" // Carbohydrate, by difference (g)
)

type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewUSDAService initializes the client with credentials and a short
// timeout; a hung remote call must not stall the resolution chain.
func NewUSDAService() *USDAService {
	key := os.Getenv("USDA_API_KEY")
	if key == "" {
		key = "DEMO_KEY"
	}
	base := os.Getenv("USDA_BASE_URL")
	if base == "" {
		base = "https://api.nal.usda.gov/fdc/v1"
	}
	return &USDAService{
		apiKey:  key,
		baseURL: base,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type foodSearchResponse struct {
	Foods []FoodRecord `json:"foods"`
}

// Search queries the food database by name, most relevant first, with
// raw/basic descriptions promoted over processed ones.
func (s *USDAService) Search(query string) ([]FoodRecord, error) {
	u := fmt.Sprintf(
		"%s/foods/search?api_key=%s&query=%s&dataType=%s&pageSize=10&sortBy=score",
		s.baseURL, s.apiKey, url.QueryEscape(query), url.QueryEscape("SR Legacy"),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA search JSON: %w", err)
	}

	return preferRawFoods(sr.Foods), nil
}

// processedWords flag descriptions of prepared variants. A query for
// "chicken" should land on the raw ingredient, not a breaded cutlet.
var processedWords = []string{
	"breaded", "fried", "cooked", "prepared", "seasoned", "marinated", "stuffed",
}

// preferRawFoods keeps the incoming relevance order but moves records
// whose description mentions a processed keyword behind the raw matches.
func preferRawFoods(foods []FoodRecord) []FoodRecord {
	raw := make([]FoodRecord, 0, len(foods))
	processed := make([]FoodRecord, 0)

	for _, f := range foods {
		if describesProcessed(f.Description) {
			processed = append(processed, f)
		} else {
			raw = append(raw, f)
		}
	}
	return append(raw, processed...)
}

func describesProcessed(description string) bool {
	d := strings.ToLower(description)
	for _, w := range processedWords {
		if strings.Contains(d, w) {
			return true
		}
	}
	return false
}

// perHundredGrams pulls the four tracked nutrients out of a record.
// The energy nutrient is mandatory; a record without it is treated as
// a miss so the chain can fall through.
func perHundredGrams(f FoodRecord) (models.NutritionPer100g, bool) {
	var per models.NutritionPer100g
	found := false
	for _, n := range f.FoodNutrients {
		switch n.NutrientNumber {
		case nutrientEnergy:
			per.Calories = n.Value
			found = true
		case nutrientProtein:
			per.ProteinG = n.Value
		case nutrientFat:
			per.FatG = n.Value
		case nutrientCarbs:
			per.CarbsG = n.Value
		}
	}
	return per, found
}
