package controllers

import (
	"net/http"
	"strconv"

	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

type PatternController struct {
	Svc *services.PatternService
}

func NewPatternController(svc *services.PatternService) *PatternController {
	return &PatternController{Svc: svc}
}

// GET /patterns
func (pc *PatternController) GetPatterns(c *gin.Context) {
	uid := c.GetUint("userID")

	patterns, err := pc.Svc.GetPatterns(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// GET /patterns/recommendations?category=Desserts&limit=3
func (pc *PatternController) Recommendations(c *gin.Context) {
	uid := c.GetUint("userID")

	category := c.DefaultQuery("category", "Daily choices")
	if !services.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	limit := 3
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	recs, err := pc.Svc.SmartRecommendations(uid, category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "recommendations": recs})
}
