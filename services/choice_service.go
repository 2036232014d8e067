package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dicoder4/MoOdMeNU/models"
)

// HistoryStore is the append-only log of rated food choices.
type HistoryStore interface {
	Append(choice *models.FoodChoice) error
	Query(userID uint, category string, limit int) ([]models.FoodChoice, error)
}

type ChoiceService struct {
	DB *gorm.DB
}

var _ HistoryStore = (*ChoiceService)(nil)

func NewChoiceService(db *gorm.DB) *ChoiceService {
	return &ChoiceService{DB: db}
}

func (s *ChoiceService) Append(choice *models.FoodChoice) error {
	if choice.Rating < 1 || choice.Rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", choice.Rating)
	}
	if choice.Dish == "" {
		return fmt.Errorf("dish is required")
	}
	if choice.Category != "" && !ValidCategory(choice.Category) {
		return fmt.Errorf("unknown category %q", choice.Category)
	}
	if choice.LoggedAt.IsZero() {
		choice.LoggedAt = time.Now()
	}
	return s.DB.Create(choice).Error
}

// Query returns the user's choices most recent first. A zero limit means
// everything; category narrows the log to one section of the menu.
func (s *ChoiceService) Query(userID uint, category string, limit int) ([]models.FoodChoice, error) {
	q := s.DB.Where("user_id = ?", userID).Order("logged_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var choices []models.FoodChoice
	if err := q.Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}
