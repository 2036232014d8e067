package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "suggestion" | "reminder" | "info"
	Message   string    `gorm:"type:text"`
	Category  string    `gorm:"size:32"` // eating occasion the alert points at, optional
	CreatedAt time.Time
}
