package controllers

import (
	"net/http"

	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

const fallbackDailyCalories = 2000

type SuggestionController struct {
	Svc     *services.SuggestionService
	Fitness *services.FitnessService
	Gemini  *services.GeminiService
}

func NewSuggestionController(svc *services.SuggestionService, fitness *services.FitnessService, gemini *services.GeminiService) *SuggestionController {
	return &SuggestionController{Svc: svc, Fitness: fitness, Gemini: gemini}
}

type SuggestInput struct {
	MealType       string `json:"meal_type" binding:"required"` // breakfast|lunch|dinner|snack
	Cuisine        string `json:"cuisine"`
	TargetCalories int    `json:"target_calories"` // optional, defaults to saved goal
}

var validMealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true,
}

// POST /suggestions
func (sc *SuggestionController) Suggest(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var input SuggestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validMealTypes[input.MealType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be breakfast, lunch, dinner or snack"})
		return
	}

	target := input.TargetCalories
	if target <= 0 {
		if fg, err := sc.Fitness.GetGoals(uid); err == nil && fg.TargetCalories > 0 {
			target = fg.TargetCalories
		} else {
			target = fallbackDailyCalories
		}
	}

	dietaryNotes := ""
	if user, err := services.FindUserByEmail(email); err == nil {
		dietaryNotes = user.DietaryNotes
	}

	result, err := sc.Svc.Suggest(uid, input.MealType, input.Cuisine, target, dietaryNotes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type IdeasInput struct {
	Category string `json:"category" binding:"required"`
}

// POST /suggestions/ideas — fresh dishes to add to one menu category
func (sc *SuggestionController) CategoryIdeas(c *gin.Context) {
	email := c.GetString("email")

	var input IdeasInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !services.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	dietaryNotes := ""
	if user, err := services.FindUserByEmail(email); err == nil {
		dietaryNotes = user.DietaryNotes
	}

	ideas, err := sc.Gemini.GenerateCategoryIdeas(input.Category, services.CategoryDishes(input.Category), dietaryNotes)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": input.Category, "ideas": ideas})
}
