package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func rated(dish string, rating int) models.FoodChoice {
	return models.FoodChoice{
		Dish:     dish,
		Category: "Daily choices",
		Rating:   rating,
		LoggedAt: time.Now(),
	}
}

func TestRankCandidatesRejectsOutOfRangeRating(t *testing.T) {
	history := []models.FoodChoice{rated("Dosa", 11)}
	_, err := RankCandidates([]CandidateDish{{Dish: "Idli"}}, PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	assert.Error(t, err)

	history = []models.FoodChoice{rated("Dosa", 0)}
	_, err = RankCandidates([]CandidateDish{{Dish: "Idli"}}, PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	assert.Error(t, err)
}

func TestRankCandidatesDislikedNeverReturns(t *testing.T) {
	history := []models.FoodChoice{
		rated("Bitter Gourd Curry", 2),
		rated("Bitter Gourd Curry", 9), // a later rave does not undo the dislike
	}
	res, err := RankCandidates(
		[]CandidateDish{{Dish: "bitter gourd curry", EstimatedCals: 300}},
		PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
	assert.NotEmpty(t, res.Message)
}

func TestRankCandidatesRepetitionPenaltyMonotonic(t *testing.T) {
	once := []models.FoodChoice{rated("Dosa", 8)}
	twice := []models.FoodChoice{rated("Dosa", 8), rated("Dosa", 8)}

	cand := []CandidateDish{{Dish: "Dosa", EstimatedCals: 300}}
	th := DefaultRatingThresholds()

	resOnce, err := RankCandidates(cand, PreferenceProfile{}, once, th, 5)
	require.NoError(t, err)
	resTwice, err := RankCandidates(cand, PreferenceProfile{}, twice, th, 5)
	require.NoError(t, err)

	require.Len(t, resOnce.Suggestions, 1)
	require.Len(t, resTwice.Suggestions, 1)
	assert.Greater(t, resOnce.Suggestions[0].Score, resTwice.Suggestions[0].Score)
}

func TestRankCandidatesNovelFirstWithFavoriteBackfill(t *testing.T) {
	history := []models.FoodChoice{
		rated("Old Favourite A", 9),
		rated("Old Favourite B", 9),
		rated("Old Favourite C", 9),
		rated("Old Favourite D", 9),
	}
	cands := []CandidateDish{
		{Dish: "Old Favourite A", EstimatedCals: 300},
		{Dish: "Old Favourite B", EstimatedCals: 300},
		{Dish: "Old Favourite C", EstimatedCals: 300},
		{Dish: "Old Favourite D", EstimatedCals: 300},
		{Dish: "Brand New Dish", EstimatedCals: 300},
	}
	res, err := RankCandidates(cands, PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	require.NoError(t, err)

	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "Brand New Dish", res.Suggestions[0].Dish)
	assert.True(t, res.Suggestions[0].Novel)

	// at most 3 previously loved dishes pad the list
	favorites := 0
	for _, s := range res.Suggestions {
		if !s.Novel {
			favorites++
		}
	}
	assert.LessOrEqual(t, favorites, 3)
}

func TestRankCandidatesMidRatedRepeatsExcluded(t *testing.T) {
	history := []models.FoodChoice{rated("Okay Dish", 5)}
	res, err := RankCandidates(
		[]CandidateDish{{Dish: "Okay Dish", EstimatedCals: 300}},
		PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
}

func TestRankCandidatesCalorieTendencyBonus(t *testing.T) {
	profile := PreferenceProfile{CalorieTendency: "lower"}
	cands := []CandidateDish{
		{Dish: "Heavy Biryani", EstimatedCals: 650},
		{Dish: "Light Salad", EstimatedCals: 220},
	}
	res, err := RankCandidates(cands, profile, nil, DefaultRatingThresholds(), 5)
	require.NoError(t, err)

	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "Light Salad", res.Suggestions[0].Dish)
}

func TestRankCandidatesMealTypeBonus(t *testing.T) {
	profile := PreferenceProfile{FavoredMealTypes: []string{"breakfast"}}
	cands := []CandidateDish{
		{Dish: "Dinner Thing", EstimatedCals: 300, MealType: "dinner"},
		{Dish: "Breakfast Thing", EstimatedCals: 300, MealType: "breakfast"},
	}
	res, err := RankCandidates(cands, profile, nil, DefaultRatingThresholds(), 5)
	require.NoError(t, err)

	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "Breakfast Thing", res.Suggestions[0].Dish)
}

func TestRankCandidatesCuisineBonus(t *testing.T) {
	history := []models.FoodChoice{rated("South Indian Thali", 9)}
	cands := []CandidateDish{
		{Dish: "Pasta", EstimatedCals: 400, Focus: "italian comfort"},
		{Dish: "Uttapam", EstimatedCals: 400, Focus: "south indian classic"},
	}
	res, err := RankCandidates(cands, PreferenceProfile{}, history, DefaultRatingThresholds(), 5)
	require.NoError(t, err)

	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "Uttapam", res.Suggestions[0].Dish)
	assert.Contains(t, res.Suggestions[0].Explanation, "south indian")
}

func TestRankCandidatesDeterministic(t *testing.T) {
	history := []models.FoodChoice{rated("Dosa", 9), rated("Pizza", 2)}
	cands := []CandidateDish{
		{Dish: "A", EstimatedCals: 300},
		{Dish: "B", EstimatedCals: 300},
		{Dish: "C", EstimatedCals: 300},
	}
	th := DefaultRatingThresholds()
	a, err := RankCandidates(cands, PreferenceProfile{}, history, th, 5)
	require.NoError(t, err)
	b, err := RankCandidates(cands, PreferenceProfile{}, history, th, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// equal scores keep input order
	assert.Equal(t, "A", a.Suggestions[0].Dish)
	assert.Equal(t, "B", a.Suggestions[1].Dish)
	assert.Equal(t, "C", a.Suggestions[2].Dish)
}

func TestRankCandidatesEmptyInputGivesMessage(t *testing.T) {
	res, err := RankCandidates(nil, PreferenceProfile{}, nil, DefaultRatingThresholds(), 5)
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
	assert.NotEmpty(t, res.Message)
}

func TestRankCandidatesLimitRespected(t *testing.T) {
	var cands []CandidateDish
	for _, d := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		cands = append(cands, CandidateDish{Dish: d, EstimatedCals: 300})
	}
	res, err := RankCandidates(cands, PreferenceProfile{}, nil, DefaultRatingThresholds(), 4)
	require.NoError(t, err)
	assert.Len(t, res.Suggestions, 4)
}
