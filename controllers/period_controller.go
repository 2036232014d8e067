package controllers

import (
	"net/http"
	"time"

	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

type PeriodController struct {
	Svc *services.PeriodService
}

func NewPeriodController(svc *services.PeriodService) *PeriodController {
	return &PeriodController{Svc: svc}
}

type PeriodInput struct {
	LastPeriodDate string `json:"last_period_date" binding:"required"` // YYYY-MM-DD
	CycleLength    int    `json:"cycle_length"`
}

// PUT /period
func (pc *PeriodController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")

	var input PeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	last, err := time.Parse("2006-01-02", input.LastPeriodDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_period_date must be YYYY-MM-DD"})
		return
	}
	if last.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_period_date cannot be in the future"})
		return
	}

	tracker, err := pc.Svc.Upsert(uid, last, input.CycleLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracker": tracker,
		"status":  services.PeriodStatusFor(tracker, time.Now()),
	})
}

// GET /period
func (pc *PeriodController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	tracker, err := pc.Svc.Get(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no period data saved yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracker": tracker,
		"status":  services.PeriodStatusFor(tracker, time.Now()),
	})
}
