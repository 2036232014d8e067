package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dicoder4/MoOdMeNU/models"
)

func TestAppendRejectsBadInput(t *testing.T) {
	svc := NewChoiceService(nil) // validation happens before the DB is touched

	err := svc.Append(&models.FoodChoice{Dish: "Dosa", Rating: 0})
	assert.Error(t, err)

	err = svc.Append(&models.FoodChoice{Dish: "Dosa", Rating: 11})
	assert.Error(t, err)

	err = svc.Append(&models.FoodChoice{Rating: 5})
	assert.Error(t, err)

	err = svc.Append(&models.FoodChoice{Dish: "Dosa", Rating: 5, Category: "Midnight snacks"})
	assert.Error(t, err)
}

func TestValidCategory(t *testing.T) {
	for _, cat := range Categories {
		assert.True(t, ValidCategory(cat), cat)
	}
	assert.False(t, ValidCategory("Midnight snacks"))
}

func TestCategoryDishesFlattensCuisines(t *testing.T) {
	dishes := CategoryDishes("Daily choices")
	assert.NotEmpty(t, dishes)

	assert.Empty(t, CategoryDishes("Midnight snacks"))
}
