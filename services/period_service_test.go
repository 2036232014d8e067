package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicoder4/MoOdMeNU/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodStatusOnPeriod(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1), CycleLength: 28}

	status := PeriodStatusFor(tracker, day(2026, 3, 4))
	assert.Equal(t, 3, status.DaysSinceLast)
	assert.Equal(t, "on_period", status.Phase)
}

func TestPeriodStatusApproaching(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1), CycleLength: 28}

	// next start predicted 2026-03-29; two days out counts as approaching
	status := PeriodStatusFor(tracker, day(2026, 3, 27))
	assert.Equal(t, 2, status.DaysToNext)
	assert.Equal(t, "approaching", status.Phase)
}

func TestPeriodStatusMidCycle(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1), CycleLength: 28}

	status := PeriodStatusFor(tracker, day(2026, 3, 15))
	assert.Equal(t, "none", status.Phase)
	assert.Equal(t, 14, status.DaysSinceLast)
	assert.Equal(t, 14, status.DaysToNext)
}

func TestPeriodStatusPredictsFiveCycles(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1), CycleLength: 28}

	status := PeriodStatusFor(tracker, day(2026, 3, 15))
	require.Len(t, status.Predicted, 5)
	assert.Equal(t, day(2026, 3, 29), status.Predicted[0])
	assert.Equal(t, day(2026, 4, 26), status.Predicted[1])
	for i := 1; i < len(status.Predicted); i++ {
		assert.Equal(t, 28*24*time.Hour, status.Predicted[i].Sub(status.Predicted[i-1]))
	}
}

func TestPeriodStatusZeroCycleDefaults(t *testing.T) {
	tracker := models.PeriodTracker{LastPeriodDate: day(2026, 3, 1)}

	status := PeriodStatusFor(tracker, day(2026, 3, 15))
	assert.Equal(t, 14, status.DaysToNext) // 28-day default
}
