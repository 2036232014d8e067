package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 15, hour, 0, 0, 0, time.UTC)
}

func TestMealTimeSuggestionWindows(t *testing.T) {
	cases := []struct {
		hour     int
		want     bool
		priority string
	}{
		{7, true, "high"},    // breakfast
		{12, true, "high"},   // lunch
		{18, true, "medium"}, // dinner
		{15, false, ""},
		{22, false, ""},
	}
	for _, tc := range cases {
		s, ok := mealTimeSuggestion(at(tc.hour))
		assert.Equal(t, tc.want, ok, "hour %d", tc.hour)
		if tc.want {
			assert.Equal(t, tc.priority, s.Priority, "hour %d", tc.hour)
			assert.Equal(t, "meal_time", s.Type)
		}
	}
}

func TestPeriodSuggestionsPointAtComfortFood(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 13), CycleLength: 28}

	out := periodSuggestions(tracker, day(2026, 3, 15))
	require.Len(t, out, 1)
	assert.Equal(t, "period", out[0].Type)
	assert.Equal(t, "Period is killing", out[0].Category)
	assert.Equal(t, "high", out[0].Priority)
}

func TestPeriodSuggestionsQuietMidCycle(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1), CycleLength: 28}
	out := periodSuggestions(tracker, day(2026, 3, 15))
	assert.Empty(t, out)
}

func TestLowActivityReminder(t *testing.T) {
	now := day(2026, 3, 15)

	// two recent logs: reminder fires
	history := []models.FoodChoice{
		{Dish: "A", Rating: 6, LoggedAt: now.AddDate(0, 0, -1)},
		{Dish: "B", Rating: 6, LoggedAt: now.AddDate(0, 0, -2)},
		{Dish: "Old", Rating: 6, LoggedAt: now.AddDate(0, 0, -20)},
	}
	r, ok := lowActivityReminder(history, now)
	require.True(t, ok)
	assert.Equal(t, "reminder", r.Type)
	assert.Equal(t, "low", r.Priority)

	// a third recent log silences it
	history = append(history, models.FoodChoice{Dish: "C", Rating: 6, LoggedAt: now.AddDate(0, 0, -3)})
	_, ok = lowActivityReminder(history, now)
	assert.False(t, ok)
}

func TestTopSuggestionPicksHighestPriority(t *testing.T) {
	best, ok := topSuggestion([]ProactiveSuggestion{
		{Type: "reminder", Priority: "low"},
		{Type: "period", Priority: "high"},
		{Type: "pattern", Priority: "medium"},
	})
	require.True(t, ok)
	assert.Equal(t, "period", best.Type)

	_, ok = topSuggestion(nil)
	assert.False(t, ok)
}
