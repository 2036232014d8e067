package controllers

import (
	"net/http"
	"time"

	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.UpdateUserProfile(email, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

type OnboardingInput struct {
	Birthday       string  `json:"birthday" binding:"required"` // YYYY-MM-DD
	Gender         string  `json:"gender" binding:"required"`
	Height         float64 `json:"height" binding:"required"`
	Weight         float64 `json:"weight" binding:"required"`
	DietaryNotes   string  `json:"dietary_notes"`
	ProfilePicture string  `json:"profile_picture"`
	MFAEnabled     bool    `json:"mfa_enabled"`
}

func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")
	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birthday must be YYYY-MM-DD"})
		return
	}

	err = services.CompleteUserOnboarding(
		email,
		birthday,
		input.Gender,
		input.Height, input.Weight,
		input.DietaryNotes,
		input.ProfilePicture,
		input.MFAEnabled,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}
