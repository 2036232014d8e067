package services

import (
	"fmt"
	"sort"

	"github.com/dicoder4/MoOdMeNU/models"
)

// UserPatterns is the dashboard view of a user's eating history.
type UserPatterns struct {
	CategoryPreferences map[string]CategoryStat `json:"category_preferences"`
	HighRatedFoods      []RatedFood             `json:"high_rated_foods"`
	LowRatedFoods       []RatedFood             `json:"low_rated_foods"`
	AvgRating           float64                 `json:"avg_rating"`
	RecentTrends        []string                `json:"recent_trends"`
	Insights            []string                `json:"insights"`
}

type RatedFood struct {
	Dish     string `json:"dish"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

type SmartRecommendation struct {
	Dish       string  `json:"dish"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

type PatternService struct {
	Store HistoryStore
}

func NewPatternService(store HistoryStore) *PatternService {
	return &PatternService{Store: store}
}

// AnalyzePatterns is the pure aggregation behind GetPatterns.
func AnalyzePatterns(history []models.FoodChoice, th RatingThresholds) UserPatterns {
	patterns := UserPatterns{CategoryPreferences: map[string]CategoryStat{}}
	if len(history) == 0 {
		patterns.Insights = []string{"No eating patterns detected yet. Start rating your food choices!"}
		return patterns
	}

	sum := 0
	for _, ev := range history {
		sum += ev.Rating

		stat := patterns.CategoryPreferences[ev.Category]
		stat.Count++
		stat.AvgRating += (float64(ev.Rating) - stat.AvgRating) / float64(stat.Count)
		patterns.CategoryPreferences[ev.Category] = stat

		if ev.Rating >= th.Loved {
			patterns.HighRatedFoods = append(patterns.HighRatedFoods, RatedFood{Dish: ev.Dish, Category: ev.Category, Rating: ev.Rating})
		} else if ev.Rating <= th.Disliked {
			patterns.LowRatedFoods = append(patterns.LowRatedFoods, RatedFood{Dish: ev.Dish, Category: ev.Category, Rating: ev.Rating})
		}
	}
	patterns.AvgRating = float64(sum) / float64(len(history))

	for i, ev := range history {
		if i >= recentTrendLimit {
			break
		}
		patterns.RecentTrends = append(patterns.RecentTrends, fmt.Sprintf("Rated %s %d/10", ev.Dish, ev.Rating))
	}

	if best, stat, ok := bestCategory(patterns.CategoryPreferences, 1); ok {
		patterns.Insights = append(patterns.Insights,
			fmt.Sprintf("You seem to love %s meals! (avg rating: %.1f)", best, stat.AvgRating))
	}
	if len(patterns.HighRatedFoods) > 0 {
		patterns.Insights = append(patterns.Insights,
			fmt.Sprintf("You have %d foods rated %d+ — your agent knows what you love!", len(patterns.HighRatedFoods), th.Loved))
	}
	if len(patterns.LowRatedFoods) > 0 {
		patterns.Insights = append(patterns.Insights,
			fmt.Sprintf("%d foods rated %d or below will be avoided in future suggestions.", len(patterns.LowRatedFoods), th.Disliked))
	}
	if len(patterns.Insights) == 0 {
		patterns.Insights = []string{"Your ratings are mostly middle-of-the-road. Rate a few favourites higher to sharpen suggestions!"}
	}
	return patterns
}

func (s *PatternService) GetPatterns(userID uint) (UserPatterns, error) {
	history, err := s.Store.Query(userID, "", 0)
	if err != nil {
		return UserPatterns{}, err
	}
	return AnalyzePatterns(history, InsightRatingThresholds()), nil
}

// SmartRecommendations surfaces past favourites in a category plus, when
// another category clearly outshines it, a cross-category nudge.
func (s *PatternService) SmartRecommendations(userID uint, category string, limit int) ([]SmartRecommendation, error) {
	if limit <= 0 {
		limit = 3
	}
	history, err := s.Store.Query(userID, "", 0)
	if err != nil {
		return nil, err
	}
	th := DefaultRatingThresholds()
	patterns := AnalyzePatterns(history, th)

	var recs []SmartRecommendation
	seen := map[string]bool{}
	for _, f := range patterns.HighRatedFoods {
		if f.Category != category || seen[f.Dish] {
			continue
		}
		seen[f.Dish] = true
		recs = append(recs, SmartRecommendation{
			Dish:       f.Dish,
			Reason:     fmt.Sprintf("You rated this %d/10 — you might want to try it again!", f.Rating),
			Confidence: float64(f.Rating) / 10.0,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Confidence > recs[j].Confidence })
	if len(recs) > limit {
		recs = recs[:limit]
	}

	if best, stat, ok := bestCategory(patterns.CategoryPreferences, 2); ok && best != category && stat.AvgRating >= 7 {
		recs = append(recs, SmartRecommendation{
			Dish:       fmt.Sprintf("Something from %s", best),
			Reason:     fmt.Sprintf("You consistently rate %s meals highly (avg %.1f/10).", best, stat.AvgRating),
			Confidence: stat.AvgRating / 10.0,
		})
	}
	return recs, nil
}

// bestCategory picks the highest average-rated category with at least
// minCount samples; ties break alphabetically so the result is stable.
func bestCategory(prefs map[string]CategoryStat, minCount int) (string, CategoryStat, bool) {
	names := make([]string, 0, len(prefs))
	for name := range prefs {
		names = append(names, name)
	}
	sort.Strings(names)

	var best string
	var bestStat CategoryStat
	for _, name := range names {
		stat := prefs[name]
		if stat.Count < minCount {
			continue
		}
		if best == "" || stat.AvgRating > bestStat.AvgRating {
			best = name
			bestStat = stat
		}
	}
	return best, bestStat, best != ""
}
