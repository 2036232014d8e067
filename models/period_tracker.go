package models

import (
	"time"

	"gorm.io/gorm"
)

// PeriodTracker feeds the proactive agent: comfort-food suggestions are
// surfaced in the days around the predicted period start.
type PeriodTracker struct {
	gorm.Model
	UserID          uint      `gorm:"uniqueIndex;not null"`
	LastPeriodDate  time.Time `gorm:"not null"`
	CycleLength     int       `gorm:"default:28"` // days
}
