package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dicoder4/MoOdMeNU/models"
)

type ProactiveSuggestion struct {
	Type     string `json:"type"` // "meal_time" | "pattern" | "period" | "reminder"
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority"` // "high" | "medium" | "low"
}

type ProactiveService struct {
	Store  HistoryStore
	Period *PeriodService
	Bus    *AlertBus
}

func NewProactiveService(store HistoryStore, period *PeriodService, bus *AlertBus) *ProactiveService {
	return &ProactiveService{Store: store, Period: period, Bus: bus}
}

// Suggestions computes every nudge that applies right now for the user.
func (s *ProactiveService) Suggestions(userID uint, now time.Time) ([]ProactiveSuggestion, error) {
	history, err := s.Store.Query(userID, "", 0)
	if err != nil {
		return nil, err
	}

	var out []ProactiveSuggestion

	if m, ok := mealTimeSuggestion(now); ok {
		out = append(out, m)
	}

	patterns := AnalyzePatterns(history, DefaultRatingThresholds())
	if best, stat, ok := bestCategory(patterns.CategoryPreferences, 3); ok && stat.AvgRating >= 7 {
		out = append(out, ProactiveSuggestion{
			Type:     "pattern",
			Message:  fmt.Sprintf("Feeling hungry? Your %s picks average %.1f/10 — a safe bet!", best, stat.AvgRating),
			Category: best,
			Priority: "medium",
		})
	}

	if tracker, err := s.Period.Get(userID); err == nil {
		out = append(out, periodSuggestions(tracker, now)...)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if r, ok := lowActivityReminder(history, now); ok {
		out = append(out, r)
	}

	return out, nil
}

// Notification returns the single highest-priority nudge, or false when
// there is nothing worth pushing.
func (s *ProactiveService) Notification(userID uint, now time.Time) (ProactiveSuggestion, bool, error) {
	suggestions, err := s.Suggestions(userID, now)
	if err != nil {
		return ProactiveSuggestion{}, false, err
	}
	best, ok := topSuggestion(suggestions)
	return best, ok, nil
}

func topSuggestion(suggestions []ProactiveSuggestion) (ProactiveSuggestion, bool) {
	if len(suggestions) == 0 {
		return ProactiveSuggestion{}, false
	}
	rank := map[string]int{"high": 3, "medium": 2, "low": 1}
	best := suggestions[0]
	for _, sg := range suggestions[1:] {
		if rank[sg.Priority] > rank[best.Priority] {
			best = sg
		}
	}
	return best, true
}

// Notify pushes the current top nudge through the alert bus (persisted,
// websocket, mobile push). No-op when nothing applies.
func (s *ProactiveService) Notify(userID uint, now time.Time) error {
	best, ok, err := s.Notification(userID, now)
	if err != nil || !ok {
		return err
	}
	return s.Bus.Emit(userID, "suggestion", best.Message, best.Category)
}

func mealTimeSuggestion(now time.Time) (ProactiveSuggestion, bool) {
	switch h := now.Hour(); {
	case h >= 6 && h <= 10:
		return ProactiveSuggestion{
			Type:     "meal_time",
			Message:  "Good morning! Time for breakfast — want a suggestion?",
			Category: "Daily choices",
			Priority: "high",
		}, true
	case h >= 11 && h <= 14:
		return ProactiveSuggestion{
			Type:     "meal_time",
			Message:  "Lunch time! Let your agent pick something you'll love.",
			Category: "Daily choices",
			Priority: "high",
		}, true
	case h >= 17 && h <= 20:
		return ProactiveSuggestion{
			Type:     "meal_time",
			Message:  "Dinner is coming up. Fancy something new tonight?",
			Category: "Daily choices",
			Priority: "medium",
		}, true
	}
	return ProactiveSuggestion{}, false
}

func periodSuggestions(tracker models.PeriodTracker, now time.Time) []ProactiveSuggestion {
	status := PeriodStatusFor(tracker, now)
	switch status.Phase {
	case "approaching":
		return []ProactiveSuggestion{{
			Type:     "period",
			Message:  fmt.Sprintf("Your period is predicted in %d day(s). Stock up on comfort food favourites?", status.DaysToNext),
			Category: "Period is killing",
			Priority: "high",
		}}
	case "on_period":
		return []ProactiveSuggestion{{
			Type:     "period",
			Message:  "Take it easy — here are comfort foods that always work for you.",
			Category: "Period is killing",
			Priority: "high",
		}}
	}
	return nil
}

// lowActivityReminder fires when fewer than 3 choices were logged in the
// last week.
func lowActivityReminder(history []models.FoodChoice, now time.Time) (ProactiveSuggestion, bool) {
	cutoff := now.AddDate(0, 0, -7)
	recent := 0
	for _, ev := range history {
		if ev.LoggedAt.After(cutoff) {
			recent++
		}
	}
	if recent >= 3 {
		return ProactiveSuggestion{}, false
	}
	return ProactiveSuggestion{
		Type:     "reminder",
		Message:  "You haven't logged many meals this week. Rate what you eat so your agent keeps learning!",
		Priority: "low",
	}, true
}
