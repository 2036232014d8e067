package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func TestAnalyzePatternsEmptyHistory(t *testing.T) {
	p := AnalyzePatterns(nil, InsightRatingThresholds())
	assert.Empty(t, p.HighRatedFoods)
	assert.Empty(t, p.LowRatedFoods)
	assert.Equal(t, []string{"No eating patterns detected yet. Start rating your food choices!"}, p.Insights)
}

func TestAnalyzePatternsThresholds(t *testing.T) {
	history := []models.FoodChoice{
		choice("Brownie", "Desserts", 8, 400, ""),
		choice("Dosa", "Daily choices", 7, 300, ""), // below the stricter loved cutoff
		choice("Karela", "Daily choices", 3, 100, ""),
	}
	p := AnalyzePatterns(history, InsightRatingThresholds())

	require.Len(t, p.HighRatedFoods, 1)
	assert.Equal(t, "Brownie", p.HighRatedFoods[0].Dish)
	require.Len(t, p.LowRatedFoods, 1)
	assert.Equal(t, "Karela", p.LowRatedFoods[0].Dish)
	assert.InDelta(t, 6.0, p.AvgRating, 0.001)
}

func TestAnalyzePatternsInsights(t *testing.T) {
	history := []models.FoodChoice{
		choice("Brownie", "Desserts", 9, 400, ""),
		choice("Gulab Jamun", "Desserts", 10, 350, ""),
	}
	p := AnalyzePatterns(history, InsightRatingThresholds())
	require.NotEmpty(t, p.Insights)
	assert.Contains(t, p.Insights[0], "Desserts")
}

func TestSmartRecommendationsFavoritesInCategory(t *testing.T) {
	store := &fakeStore{choices: []models.FoodChoice{
		{Dish: "Brownie", Category: "Desserts", Rating: 9, LoggedAt: time.Now()},
		{Dish: "Brownie", Category: "Desserts", Rating: 9, LoggedAt: time.Now()}, // duplicate collapses
		{Dish: "Kheer", Category: "Desserts", Rating: 8, LoggedAt: time.Now()},
		{Dish: "Dosa", Category: "Daily choices", Rating: 10, LoggedAt: time.Now()},
	}}
	svc := NewPatternService(store)

	recs, err := svc.SmartRecommendations(1, "Desserts", 3)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, "Brownie", recs[0].Dish)
	assert.Contains(t, recs[0].Reason, "9/10")
	assert.InDelta(t, 0.9, recs[0].Confidence, 0.001)

	for i, r := range recs {
		assert.NotEqual(t, "Dosa", r.Dish, "cross-category dish leaked at %d", i)
	}
}

func TestSmartRecommendationsCrossCategoryNudge(t *testing.T) {
	store := &fakeStore{choices: []models.FoodChoice{
		{Dish: "Dosa", Category: "Daily choices", Rating: 9, LoggedAt: time.Now()},
		{Dish: "Idli", Category: "Daily choices", Rating: 9, LoggedAt: time.Now()},
	}}
	svc := NewPatternService(store)

	recs, err := svc.SmartRecommendations(1, "Desserts", 3)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	last := recs[len(recs)-1]
	assert.Contains(t, last.Dish, "Daily choices")
	assert.Contains(t, last.Reason, "Daily choices")
}
