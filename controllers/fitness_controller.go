package controllers

import (
	"net/http"

	"github.com/dicoder4/MoOdMeNU/services"
	"github.com/dicoder4/MoOdMeNU/utils"

	"github.com/gin-gonic/gin"
)

type FitnessController struct {
	Svc *services.FitnessService
}

func NewFitnessController(svc *services.FitnessService) *FitnessController {
	return &FitnessController{Svc: svc}
}

type BMIInput struct {
	Height float64 `json:"height" binding:"required"` // cm
	Weight float64 `json:"weight" binding:"required"` // kg
}

// POST /fitness/bmi
func (fc *FitnessController) BMI(c *gin.Context) {
	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := utils.BMIInsight(input.Height, input.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type CaloriesInput struct {
	Weight        float64 `json:"weight" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal"` // maintain|lose|gain
}

// POST /fitness/calories — compute only, nothing persisted
func (fc *FitnessController) Calories(c *gin.Context) {
	var input CaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidActivityLevel(input.ActivityLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity_level must be sedentary, light, moderate, active or very_active"})
		return
	}

	targets := utils.CalculateDailyCalories(input.Weight, input.Height, input.Age, input.Gender, input.ActivityLevel, input.Goal)
	c.JSON(http.StatusOK, targets)
}

// PUT /fitness/goals — compute and persist
func (fc *FitnessController) SaveGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, targets, err := fc.Svc.SaveGoals(uid, input.Weight, input.Height, input.Age, input.Gender, input.ActivityLevel, input.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal, "targets": targets})
}

// GET /fitness/goals
func (fc *FitnessController) GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := fc.Svc.GetGoals(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no fitness goals saved yet"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type MealSuggestionsInput struct {
	MealType       string `json:"meal_type" binding:"required"`
	TargetCalories int    `json:"target_calories"`
	FoodPreference string `json:"food_preference"`
}

// POST /fitness/meal-suggestions — goal-aligned picks from the curated catalog
func (fc *FitnessController) MealSuggestions(c *gin.Context) {
	uid := c.GetUint("userID")

	var input MealSuggestionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := input.TargetCalories
	if target <= 0 {
		if fg, err := fc.Svc.GetGoals(uid); err == nil && fg.TargetCalories > 0 {
			target = fg.TargetCalories
		} else {
			target = fallbackDailyCalories
		}
	}

	result, err := fc.Svc.MealSuggestions(uid, input.MealType, target, input.FoodPreference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
