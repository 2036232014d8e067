package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func choice(dish, category string, rating, cals int, mealType string) models.FoodChoice {
	return models.FoodChoice{
		Dish:          dish,
		Category:      category,
		Rating:        rating,
		EstimatedCals: cals,
		MealType:      mealType,
		LoggedAt:      time.Now(),
	}
}

func TestBuildPreferenceProfileEmptyHistory(t *testing.T) {
	p := BuildPreferenceProfile(nil, DefaultRatingThresholds())

	assert.Equal(t, "moderate", p.CalorieTendency)
	assert.Empty(t, p.LovedDishes)
	assert.Empty(t, p.DislikedDishes)
	assert.Empty(t, p.FavoredMealTypes)
	assert.Equal(t, "No eating patterns detected yet. Start rating your food choices!", p.Insight)
}

func TestBuildPreferenceProfileLovedAndDisliked(t *testing.T) {
	history := []models.FoodChoice{
		choice("Masala Dosa", "Daily choices", 9, 350, "breakfast"),
		choice("Plain Salad", "Daily choices", 2, 150, "lunch"),
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())

	assert.Equal(t, []string{"Masala Dosa"}, p.LovedDishes)
	assert.Equal(t, []string{"Plain Salad"}, p.DislikedDishes)
	// loved meals averaged more calories than disliked ones
	assert.Equal(t, "higher", p.CalorieTendency)
}

func TestBuildPreferenceProfileCalorieTendencyLower(t *testing.T) {
	history := []models.FoodChoice{
		choice("Sprouts Salad", "Daily choices", 9, 150, ""),
		choice("Cheese Pizza", "Cheat meals", 2, 600, ""),
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())
	assert.Equal(t, "lower", p.CalorieTendency)
}

func TestBuildPreferenceProfileZeroCaloriesDontVote(t *testing.T) {
	history := []models.FoodChoice{
		choice("Mystery Curry", "Daily choices", 9, 0, ""),
		choice("Plain Salad", "Daily choices", 2, 150, ""),
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())
	assert.Equal(t, "moderate", p.CalorieTendency)
}

func TestBuildPreferenceProfileFavoredMealTypes(t *testing.T) {
	history := []models.FoodChoice{
		choice("Dosa", "Daily choices", 8, 300, "breakfast"),
		choice("Idli", "Daily choices", 9, 250, "breakfast"),
		choice("Heavy Thali", "Daily choices", 9, 700, "dinner"), // only one sample
		choice("Bland Soup", "Daily choices", 4, 100, "lunch"),
		choice("Thin Soup", "Daily choices", 5, 100, "lunch"),
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())

	// breakfast qualifies (two samples, avg 8.5); dinner has one sample,
	// lunch averages below the loved cutoff
	assert.Equal(t, []string{"breakfast"}, p.FavoredMealTypes)
}

func TestBuildPreferenceProfileCategoryStats(t *testing.T) {
	history := []models.FoodChoice{
		choice("Brownie", "Desserts", 10, 400, ""),
		choice("Gulab Jamun", "Desserts", 8, 350, ""),
		choice("Oats", "Daily choices", 5, 200, ""),
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())

	require.Contains(t, p.FavoredCategories, "Desserts")
	assert.Equal(t, 2, p.FavoredCategories["Desserts"].Count)
	assert.InDelta(t, 9.0, p.FavoredCategories["Desserts"].AvgRating, 0.001)
	assert.InDelta(t, 5.0, p.FavoredCategories["Daily choices"].AvgRating, 0.001)
}

func TestBuildPreferenceProfileDeterministic(t *testing.T) {
	history := []models.FoodChoice{
		choice("Dosa", "Daily choices", 8, 300, "breakfast"),
		choice("Idli", "Daily choices", 9, 250, "breakfast"),
		choice("Brownie", "Desserts", 10, 400, "snack"),
	}
	a := BuildPreferenceProfile(history, DefaultRatingThresholds())
	b := BuildPreferenceProfile(history, DefaultRatingThresholds())
	assert.Equal(t, a, b)
}

func TestBuildPreferenceProfileRecentTrendsCapped(t *testing.T) {
	var history []models.FoodChoice
	for i := 0; i < 10; i++ {
		history = append(history, choice("Dish", "Daily choices", 6, 300, ""))
	}
	p := BuildPreferenceProfile(history, DefaultRatingThresholds())
	assert.Len(t, p.RecentTrends, recentTrendLimit)
}
