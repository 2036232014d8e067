package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dicoder4/MoOdMeNU/models"
)

// AlertBus persists an alert and fans it out over websocket and mobile
// push. Hub and push are optional so it degrades to DB-only in tests and
// local runs without AWS credentials.
type AlertBus struct {
	DB   *gorm.DB
	Hub  *RealtimeHub
	Push *PushService
}

func NewAlertBus(db *gorm.DB, hub *RealtimeHub, push *PushService) *AlertBus {
	return &AlertBus{DB: db, Hub: hub, Push: push}
}

func (b *AlertBus) Emit(userID uint, typ, message, category string) error {
	a := &models.Alert{
		UserID:    userID,
		Type:      typ,
		Message:   message,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := b.DB.Create(a).Error; err != nil {
		return err
	}

	if b.Hub != nil {
		b.Hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if b.Push != nil {
		b.Push.PushToUser(userID, "MoOdMeNU", message, map[string]string{
			"type":     typ,
			"category": category,
			"alertId":  fmt.Sprintf("%d", a.ID),
		})
	}
	return nil
}
