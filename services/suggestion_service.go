package services

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
)

// MealCalorieBand returns the share of the daily target a given meal should
// carry.
func MealCalorieBand(mealType string, dailyTarget int) (int, int) {
	var lo, hi float64
	switch mealType {
	case "lunch":
		lo, hi = 0.30, 0.40
	case "snack":
		lo, hi = 0.10, 0.15
	default: // breakfast, dinner
		lo, hi = 0.25, 0.35
	}
	return int(math.Round(float64(dailyTarget) * lo)), int(math.Round(float64(dailyTarget) * hi))
}

type SuggestionResult struct {
	ID          string             `json:"id"`
	MealType    string             `json:"meal_type"`
	Cuisine     string             `json:"cuisine,omitempty"`
	MinCals     int                `json:"min_cals"`
	MaxCals     int                `json:"max_cals"`
	Suggestions []RankedSuggestion `json:"suggestions"`
	Insight     string             `json:"insight,omitempty"`
	Message     string             `json:"message,omitempty"`
}

type SuggestionService struct {
	Store      HistoryStore
	Gateway    CandidateGateway
	Thresholds RatingThresholds
}

func NewSuggestionService(store HistoryStore, gateway CandidateGateway) *SuggestionService {
	return &SuggestionService{
		Store:      store,
		Gateway:    gateway,
		Thresholds: DefaultRatingThresholds(),
	}
}

// Suggest runs the full pipeline: load history, build the preference
// profile, generate candidates, rank them. A failing store is an error; a
// failing gateway degrades to an explanatory empty result, since the app
// should keep working when the model is down.
func (s *SuggestionService) Suggest(userID uint, mealType, cuisine string, targetCalories int, dietaryNotes string) (SuggestionResult, error) {
	history, err := s.Store.Query(userID, "", 0)
	if err != nil {
		return SuggestionResult{}, fmt.Errorf("failed to load food history: %v", err)
	}

	profile := BuildPreferenceProfile(history, s.Thresholds)
	minCals, maxCals := MealCalorieBand(mealType, targetCalories)

	var recent []string
	for i, ev := range history {
		if i >= recentTrendLimit {
			break
		}
		recent = append(recent, ev.Dish)
	}

	result := SuggestionResult{
		ID:       uuid.New().String(),
		MealType: mealType,
		Cuisine:  cuisine,
		MinCals:  minCals,
		MaxCals:  maxCals,
		Insight:  profile.Insight,
	}

	candidates, err := s.Gateway.GenerateCandidates(CandidatePrompt{
		MealType:      mealType,
		Cuisine:       cuisine,
		MinCals:       minCals,
		MaxCals:       maxCals,
		DietaryNotes:  dietaryNotes,
		RecentHistory: recent,
		Insight:       profile.Insight,
	})
	if err != nil {
		log.Printf("candidate generation failed for user %d: %v", userID, err)
		candidates = nil
	}

	ranked, err := RankCandidates(candidates, profile, history, s.Thresholds, defaultRankLimit)
	if err != nil {
		return SuggestionResult{}, err
	}
	result.Suggestions = ranked.Suggestions
	result.Message = ranked.Message
	return result, nil
}
