package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dicoder4/MoOdMeNU/models"
	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

type ChoiceController struct {
	Choices *services.ChoiceService
	Rek     *services.RekognitionService
}

func NewChoiceController(choices *services.ChoiceService, rek *services.RekognitionService) *ChoiceController {
	return &ChoiceController{Choices: choices, Rek: rek}
}

type LogChoiceInput struct {
	Category      string `json:"category"`
	Dish          string `json:"dish" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
	EstimatedCals int    `json:"estimated_cals"`
	MealType      string `json:"meal_type"`
	LoggedAt      string `json:"logged_at"` // optional, RFC3339
}

// POST /choices
func (cc *ChoiceController) LogChoice(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogChoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	choice := models.FoodChoice{
		UserID:        uid,
		Category:      input.Category,
		Dish:          input.Dish,
		Rating:        input.Rating,
		Comment:       input.Comment,
		EstimatedCals: input.EstimatedCals,
		MealType:      input.MealType,
	}
	if input.LoggedAt != "" {
		t, err := time.Parse(time.RFC3339, input.LoggedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logged_at must be RFC3339"})
			return
		}
		choice.LoggedAt = t
	}

	if err := cc.Choices.Append(&choice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "choice logged", "id": choice.ID})
}

// GET /choices?category=Desserts&limit=20
func (cc *ChoiceController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	category := c.Query("category")
	if category != "" && !services.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	choices, err := cc.Choices.Query(uid, category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"choices": choices, "count": len(choices)})
}

// GET /choices/categories
func (cc *ChoiceController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": services.Categories})
}

// POST /choices/recognize  { "image_base64": "data:…" }
func (cc *ChoiceController) Recognize(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid body"})
		return
	}

	dish, labels, err := cc.Rek.RecognizeDish(req.ImageBase64)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"dish": dish, "labels": labels})
}
