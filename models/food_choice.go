package models

import (
	"time"

	"gorm.io/gorm"
)

// One rated food event. Append-only: choices are never edited or deleted,
// every derived stat is recomputed from the raw log.
type FoodChoice struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	Category      string `gorm:"index;not null"` // eating occasion, see services.Categories
	Dish          string `gorm:"not null"`       // free text, matched case-insensitively
	Rating        int    `gorm:"not null"`       // 1–10, validated at the API boundary
	Comment       string `gorm:"type:text"`
	EstimatedCals int    // kcal, 0 when unknown
	MealType      string `gorm:"size:16"` // "breakfast"|"lunch"|"dinner"|"snack", optional
	LoggedAt      time.Time `gorm:"index;not null"`
}
