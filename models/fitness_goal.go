package models

import (
	"gorm.io/gorm"
)

// FitnessGoal holds each user’s biometric inputs plus the last computed
// calorie targets, so the app can re-show them without recomputing.
type FitnessGoal struct {
	gorm.Model
	UserID        uint    `gorm:"index;not null"`
	WeightKg      float64 // e.g. 60
	HeightCm      float64 // e.g. 160
	Age           int
	Gender        string `gorm:"size:10"` // "male" | "female"
	ActivityLevel string `gorm:"size:16"` // "sedentary"…"very_active"
	Goal          string `gorm:"size:10"` // "maintain" | "lose" | "gain"

	BMR            int
	TDEE           int
	TargetCalories int
	ProteinG       int
	CarbsG         int
	FatG           int
}
