package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dicoder4/MoOdMeNU/models"
)

// RatingThresholds names the one cutoff pair every preference computation
// uses. The old code had ≥7/≤4 in one path and ≥8/≤3 in another for the
// same idea; callers now pick a named pair instead of hard-coding numbers.
type RatingThresholds struct {
	Loved    int // rating >= Loved counts as a strong like
	Disliked int // rating <= Disliked counts as a strong dislike
}

func DefaultRatingThresholds() RatingThresholds {
	return RatingThresholds{Loved: 7, Disliked: 3}
}

// InsightRatingThresholds is the stricter pair the pattern dashboard uses
// for its "foods you loved" call-outs.
func InsightRatingThresholds() RatingThresholds {
	return RatingThresholds{Loved: 8, Disliked: 3}
}

type CategoryStat struct {
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

// PreferenceProfile is derived from the raw choice log on every request,
// never persisted.
type PreferenceProfile struct {
	CalorieTendency   string                  `json:"calorie_tendency"` // "lower"|"moderate"|"higher"
	FavoredMealTypes  []string                `json:"favored_meal_types"`
	FavoredCategories map[string]CategoryStat `json:"favored_categories"`
	LovedDishes       []string                `json:"loved_dishes"`
	DislikedDishes    []string                `json:"disliked_dishes"`
	RecentTrends      []string                `json:"recent_trends"`
	Insight           string                  `json:"insight"`
}

const recentTrendLimit = 5

// BuildPreferenceProfile aggregates a user's rated history into a profile.
// Pure: same history in, same profile out. An empty history yields the
// neutral profile, never an error. The input is expected most-recent-first;
// only RecentTrends depends on that order.
func BuildPreferenceProfile(history []models.FoodChoice, th RatingThresholds) PreferenceProfile {
	profile := PreferenceProfile{
		CalorieTendency:   "moderate",
		FavoredCategories: map[string]CategoryStat{},
	}

	if len(history) == 0 {
		profile.Insight = "No eating patterns detected yet. Start rating your food choices!"
		return profile
	}

	var lovedCalsSum, lovedCalsN, dislikedCalsSum, dislikedCalsN int
	mealTypeRatings := map[string][]int{}

	for _, ev := range history {
		// running mean per category
		stat := profile.FavoredCategories[ev.Category]
		stat.Count++
		stat.AvgRating += (float64(ev.Rating) - stat.AvgRating) / float64(stat.Count)
		profile.FavoredCategories[ev.Category] = stat

		if ev.MealType != "" {
			mealTypeRatings[ev.MealType] = append(mealTypeRatings[ev.MealType], ev.Rating)
		}

		if ev.Rating >= th.Loved {
			if len(profile.LovedDishes) < 5 {
				profile.LovedDishes = append(profile.LovedDishes, ev.Dish)
			}
			if ev.EstimatedCals > 0 {
				lovedCalsSum += ev.EstimatedCals
				lovedCalsN++
			}
		}
		if ev.Rating <= th.Disliked {
			if len(profile.DislikedDishes) < 5 {
				profile.DislikedDishes = append(profile.DislikedDishes, ev.Dish)
			}
			if ev.EstimatedCals > 0 {
				dislikedCalsSum += ev.EstimatedCals
				dislikedCalsN++
			}
		}
	}

	// calorie tendency: compare mean calories of loved vs disliked events.
	// Events without a calorie estimate don't vote. Ties stay moderate.
	if lovedCalsN > 0 && dislikedCalsN > 0 {
		lovedAvg := float64(lovedCalsSum) / float64(lovedCalsN)
		dislikedAvg := float64(dislikedCalsSum) / float64(dislikedCalsN)
		if lovedAvg > dislikedAvg {
			profile.CalorieTendency = "higher"
		} else if lovedAvg < dislikedAvg {
			profile.CalorieTendency = "lower"
		}
	}

	// meal types with mean rating >= Loved across at least 2 samples
	for mealType, ratings := range mealTypeRatings {
		if len(ratings) < 2 {
			continue
		}
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		if float64(sum)/float64(len(ratings)) >= float64(th.Loved) {
			profile.FavoredMealTypes = append(profile.FavoredMealTypes, mealType)
		}
	}
	sort.Strings(profile.FavoredMealTypes)

	for i, ev := range history {
		if i >= recentTrendLimit {
			break
		}
		profile.RecentTrends = append(profile.RecentTrends, fmt.Sprintf("Rated %s %d/10", ev.Dish, ev.Rating))
	}

	profile.Insight = profileInsight(profile)
	return profile
}

func profileInsight(p PreferenceProfile) string {
	if len(p.FavoredMealTypes) > 0 {
		return fmt.Sprintf("Your agent learned you prefer %s with %s calories!",
			strings.Join(p.FavoredMealTypes, ", "), p.CalorieTendency)
	}
	if p.CalorieTendency != "moderate" {
		return fmt.Sprintf("Your agent noticed you prefer %s calorie meals.", p.CalorieTendency)
	}
	return "Your agent is still learning your preferences. Keep rating meals!"
}
