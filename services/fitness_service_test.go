package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func TestMealSuggestionsUnknownMealType(t *testing.T) {
	svc := &FitnessService{Store: &fakeStore{}}
	_, err := svc.MealSuggestions(1, "brunch", 2000, "")
	assert.Error(t, err)
}

func TestMealSuggestionsStaysInCalorieBand(t *testing.T) {
	svc := &FitnessService{Store: &fakeStore{}}

	// snack band for 2000 kcal/day is 200-300
	res, err := svc.MealSuggestions(1, "snack", 2000, "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Suggestions)
	for _, s := range res.Suggestions {
		assert.GreaterOrEqual(t, s.EstimatedCals, 150) // widened by 50 when the band is thin
		assert.LessOrEqual(t, s.EstimatedCals, 350)
	}
}

func TestMealSuggestionsPreferenceFilter(t *testing.T) {
	svc := &FitnessService{Store: &fakeStore{}}

	res, err := svc.MealSuggestions(1, "lunch", 2000, "paneer")
	require.NoError(t, err)
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0].Dish, "Paneer")
}

func TestMealSuggestionsPreferenceFallback(t *testing.T) {
	svc := &FitnessService{Store: &fakeStore{}}

	// nothing matches; the whole catalog stays in play instead of returning nothing
	res, err := svc.MealSuggestions(1, "dinner", 2000, "sushi")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Suggestions)
}

func TestMealSuggestionsSkipsDisliked(t *testing.T) {
	store := &fakeStore{choices: []models.FoodChoice{
		{Dish: "Vegetable khichdi", Category: "Daily choices", Rating: 2, LoggedAt: time.Now()},
	}}
	svc := &FitnessService{Store: store}

	res, err := svc.MealSuggestions(1, "dinner", 2000, "")
	require.NoError(t, err)
	for _, s := range res.Suggestions {
		assert.NotEqual(t, "Vegetable khichdi", s.Dish)
	}
}
