package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dicoder4/MoOdMeNU/models"
)

// CandidateDish is an externally generated, not-yet-rated suggestion.
type CandidateDish struct {
	Dish          string `json:"dish"`
	EstimatedCals int    `json:"estimated_cals"`
	Focus         string `json:"focus"` // free-text descriptors, e.g. "South Indian, high protein"
	MealType      string `json:"meal_type,omitempty"`
}

type RankedSuggestion struct {
	CandidateDish
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
	Novel       bool    `json:"novel"` // never rated before
}

// RankResult always carries a message when the suggestion list came out
// empty, so callers never have to guess why.
type RankResult struct {
	Suggestions []RankedSuggestion `json:"suggestions"`
	Message     string             `json:"message,omitempty"`
}

const (
	dislikedPenalty  = 10.0
	repeatPenalty    = 3.0
	mealTypeBonus    = 3.0
	cuisineBonus     = 5.0
	favoriteBackfill = 3 // at most this many past favorites pad the list
	defaultRankLimit = 5
)

// longest first so "south indian" never matches as plain "indian"
var knownCuisines = []string{
	"south indian", "north indian", "gujarati", "punjabi", "bengali",
	"continental", "italian", "chinese", "mexican", "thai", "indian",
}

// RankCandidates scores each candidate against the profile and raw history,
// drops anything the user has already disliked, and orders the rest with
// novel dishes ahead of safe repeats. Pure and deterministic: equal-score
// candidates keep their input order.
func RankCandidates(candidates []CandidateDish, profile PreferenceProfile, history []models.FoodChoice, th RatingThresholds, limit int) (RankResult, error) {
	for _, ev := range history {
		if ev.Rating < 1 || ev.Rating > 10 {
			return RankResult{}, fmt.Errorf("history contains out-of-range rating %d for %q", ev.Rating, ev.Dish)
		}
	}
	if limit <= 0 {
		limit = defaultRankLimit
	}

	// index history by lowercased dish name; matching is exact, case-insensitive
	ratingsByDish := map[string][]int{}
	for _, ev := range history {
		key := strings.ToLower(ev.Dish)
		ratingsByDish[key] = append(ratingsByDish[key], ev.Rating)
	}

	lovedCuisines := lovedCuisineSet(profile, history, th)

	var novel, favorites []RankedSuggestion
	for _, cand := range candidates {
		prior := ratingsByDish[strings.ToLower(cand.Dish)]

		// hard filter: one disliked rating and the dish never comes back
		disliked := false
		for _, r := range prior {
			if r <= th.Disliked {
				disliked = true
				break
			}
		}
		if disliked {
			continue
		}

		score, reasons := scoreCandidate(cand, prior, profile, lovedCuisines, th)
		rs := RankedSuggestion{
			CandidateDish: cand,
			Score:         score,
			Explanation:   strings.Join(reasons, "; "),
			Novel:         len(prior) == 0,
		}
		if rs.Novel {
			novel = append(novel, rs)
		} else if bestRating(prior) >= th.Loved {
			favorites = append(favorites, rs)
		}
		// previously seen but neither loved nor disliked: not worth repeating
	}

	sortByScore(novel)
	sortByScore(favorites)

	out := novel
	for i := 0; i < len(favorites) && i < favoriteBackfill && len(out) < limit; i++ {
		out = append(out, favorites[i])
	}
	if len(out) > limit {
		out = out[:limit]
	}

	if len(out) == 0 {
		return RankResult{
			Message: "No suggestions matched your tastes this time. Try a different occasion, or log a few more choices so your agent can learn.",
		}, nil
	}
	return RankResult{Suggestions: out}, nil
}

func scoreCandidate(cand CandidateDish, prior []int, profile PreferenceProfile, lovedCuisines map[string]bool, th RatingThresholds) (float64, []string) {
	score := 0.0
	var reasons []string

	// repetition penalty accumulates over every prior rating of the dish
	for _, r := range prior {
		if r <= th.Disliked {
			score -= dislikedPenalty
		} else {
			score -= repeatPenalty
		}
	}
	if len(prior) > 0 {
		if bestRating(prior) >= th.Loved {
			reasons = append(reasons, fmt.Sprintf("you rated this %d/10 before", bestRating(prior)))
		} else {
			reasons = append(reasons, "you've tried this before")
		}
	} else {
		reasons = append(reasons, "something new for you")
	}

	switch profile.CalorieTendency {
	case "higher":
		if cand.EstimatedCals > 350 {
			score += 2.0
			reasons = append(reasons, "matches your higher-calorie preference")
		} else if cand.EstimatedCals > 300 {
			score += 1.0
		}
	case "lower":
		if cand.EstimatedCals < 300 {
			score += 2.0
			reasons = append(reasons, "matches your lower-calorie preference")
		} else if cand.EstimatedCals < 350 {
			score += 1.0
		}
	default: // moderate
		if cand.EstimatedCals >= 280 && cand.EstimatedCals <= 420 {
			score += 1.5
		}
	}

	for _, mt := range profile.FavoredMealTypes {
		if mt == cand.MealType {
			score += mealTypeBonus
			reasons = append(reasons, fmt.Sprintf("you usually enjoy %s", mt))
			break
		}
	}

	if c := matchCuisine(cand, lovedCuisines); c != "" {
		score += cuisineBonus
		reasons = append(reasons, fmt.Sprintf("you love %s food", c))
	}

	return score, reasons
}

// lovedCuisineSet collects cuisines referenced by the user's highly rated
// dishes or categories.
func lovedCuisineSet(profile PreferenceProfile, history []models.FoodChoice, th RatingThresholds) map[string]bool {
	loved := map[string]bool{}
	note := func(text string) {
		lower := strings.ToLower(text)
		for _, c := range knownCuisines {
			if strings.Contains(lower, c) {
				loved[c] = true
				return
			}
		}
	}
	for _, ev := range history {
		if ev.Rating >= th.Loved {
			note(ev.Dish)
			note(ev.Category)
		}
	}
	for _, d := range profile.LovedDishes {
		note(d)
	}
	return loved
}

func matchCuisine(cand CandidateDish, lovedCuisines map[string]bool) string {
	text := strings.ToLower(cand.Focus + " " + cand.Dish)
	for _, c := range knownCuisines {
		if lovedCuisines[c] && strings.Contains(text, c) {
			return c
		}
	}
	return ""
}

func bestRating(ratings []int) int {
	best := 0
	for _, r := range ratings {
		if r > best {
			best = r
		}
	}
	return best
}

func sortByScore(list []RankedSuggestion) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
}
