package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID         string `gorm:"uniqueIndex;not null"` // short handle, e.g. "diya48213"
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Birthday       time.Time
	Gender         string  `gorm:"size:10"` // "male" | "female"
	Height         float64 // cm
	Weight         float64 // kg
	DietaryNotes   string  // free text, e.g. "vegetarian, no eggs, only gravies and soups"
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool
	Onboarded      bool
}
