package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/dicoder4/MoOdMeNU/config"
	"github.com/dicoder4/MoOdMeNU/models"
)

const (
	defaultCycleLength = 28
	approachingWindow  = 2 // days before predicted start
	onPeriodWindow     = 5 // days after last recorded start
	predictedCycles    = 5
)

// PeriodStatus is the derived view of a tracker on a given day.
type PeriodStatus struct {
	DaysSinceLast int         `json:"days_since_last"`
	DaysToNext    int         `json:"days_to_next"`
	Predicted     []time.Time `json:"predicted_dates"`
	Phase         string      `json:"phase"` // "approaching" | "on_period" | "none"
}

type PeriodService struct{}

func (s *PeriodService) Upsert(userID uint, lastPeriodDate time.Time, cycleLength int) (models.PeriodTracker, error) {
	if cycleLength <= 0 {
		cycleLength = defaultCycleLength
	}

	var tracker models.PeriodTracker
	err := config.DB.Where("user_id = ?", userID).First(&tracker).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return models.PeriodTracker{}, err
	}
	tracker.UserID = userID
	tracker.LastPeriodDate = lastPeriodDate
	tracker.CycleLength = cycleLength
	if err := config.DB.Save(&tracker).Error; err != nil {
		return models.PeriodTracker{}, err
	}
	return tracker, nil
}

func (s *PeriodService) Get(userID uint) (models.PeriodTracker, error) {
	var tracker models.PeriodTracker
	err := config.DB.Where("user_id = ?", userID).First(&tracker).Error
	return tracker, err
}

// PeriodStatusFor derives cycle phase and upcoming predicted dates. Pure,
// so the proactive agent and the controller share one definition of
// "approaching".
func PeriodStatusFor(tracker models.PeriodTracker, today time.Time) PeriodStatus {
	cycle := tracker.CycleLength
	if cycle <= 0 {
		cycle = defaultCycleLength
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	last := day(tracker.LastPeriodDate)
	now := day(today)

	daysSince := int(now.Sub(last).Hours() / 24)

	// next predicted start strictly after today
	next := last
	for !next.After(now) {
		next = next.AddDate(0, 0, cycle)
	}
	daysToNext := int(next.Sub(now).Hours() / 24)

	predicted := make([]time.Time, 0, predictedCycles)
	for i, d := 0, next; i < predictedCycles; i, d = i+1, d.AddDate(0, 0, cycle) {
		predicted = append(predicted, d)
	}

	phase := "none"
	if daysSince >= 0 && daysSince <= onPeriodWindow {
		phase = "on_period"
	} else if daysToNext > 0 && daysToNext <= approachingWindow {
		phase = "approaching"
	}

	return PeriodStatus{
		DaysSinceLast: daysSince,
		DaysToNext:    daysToNext,
		Predicted:     predicted,
		Phase:         phase,
	}
}
