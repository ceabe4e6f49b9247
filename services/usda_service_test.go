package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUSDA(t *testing.T, handler http.HandlerFunc) *USDAService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &USDAService{
		apiKey:  "TEST_KEY",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 200 * time.Millisecond},
	}
}

func TestSearchParsesResults(t *testing.T) {
	svc := testUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chicken breast", r.URL.Query().Get("query"))
		assert.Equal(t, "TEST_KEY", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"foods": [
			{"description": "Chicken, breast, raw",
			 "foodNutrients": [{"nutrientNumber": "208", "value": 120}]}
		]}`))
	})

	foods, err := svc.Search("chicken breast")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Chicken, breast, raw", foods[0].Description)
}

// Processed variants get demoted behind raw matches regardless of the
// order the API returned them in.
func TestSearchPrefersRawFoods(t *testing.T) {
	svc := testUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [
			{"description": "Chicken, breast, breaded and fried"},
			{"description": "Chicken, breast, raw"},
			{"description": "Chicken, breast, cooked, roasted"},
			{"description": "Chicken, breast, meat only"}
		]}`))
	})

	foods, err := svc.Search("chicken breast")
	require.NoError(t, err)
	require.Len(t, foods, 4)
	assert.Equal(t, "Chicken, breast, raw", foods[0].Description)
	assert.Equal(t, "Chicken, breast, meat only", foods[1].Description)
	assert.Equal(t, "Chicken, breast, breaded and fried", foods[2].Description)
	assert.Equal(t, "Chicken, breast, cooked, roasted", foods[3].Description)
}

func TestSearchHTTPError(t *testing.T) {
	svc := testUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	})

	_, err := svc.Search("chicken")
	assert.Error(t, err)
}

func TestSearchMalformedJSON(t *testing.T) {
	svc := testUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": [?]`))
	})

	_, err := svc.Search("chicken")
	assert.Error(t, err)
}

// A hung remote must fail within the client timeout so the chain can
// fall through instead of stalling the request.
func TestSearchTimesOut(t *testing.T) {
	svc := testUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	})

	start := time.Now()
	_, err := svc.Search("chicken")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestPerHundredGrams(t *testing.T) {
	per, ok := perHundredGrams(FoodRecord{
		Description: "Almonds, raw",
		FoodNutrients: []FoodNutrient{
			{NutrientNumber: "208", Value: 579},
			{NutrientNumber: "203", Value: 21.2},
			{NutrientNumber: "204", Value: 49.9},
			{NutrientNumber: "205", Value: 21.6},
			{NutrientNumber: "301", Value: 269}, // calcium, ignored
		},
	})
	require.True(t, ok)
	assert.Equal(t, 579.0, per.Calories)
	assert.Equal(t, 21.2, per.ProteinG)
	assert.Equal(t, 49.9, per.FatG)
	assert.Equal(t, 21.6, per.CarbsG)
}

// Without the energy nutrient the record is useless; treat it as a miss.
func TestPerHundredGramsRequiresEnergy(t *testing.T) {
	_, ok := perHundredGrams(FoodRecord{
		FoodNutrients: []FoodNutrient{{NutrientNumber: "203", Value: 20}},
	})
	assert.False(t, ok)
}
