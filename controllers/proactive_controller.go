package controllers

import (
	"net/http"
	"time"

	"github.com/dicoder4/MoOdMeNU/services"

	"github.com/gin-gonic/gin"
)

type ProactiveController struct {
	Svc *services.ProactiveService
}

func NewProactiveController(svc *services.ProactiveService) *ProactiveController {
	return &ProactiveController{Svc: svc}
}

// GET /proactive — everything that applies right now
func (pc *ProactiveController) Suggestions(c *gin.Context) {
	uid := c.GetUint("userID")

	suggestions, err := pc.Svc.Suggestions(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := gin.H{"suggestions": suggestions}
	if top, ok, _ := pc.Svc.Notification(uid, time.Now()); ok {
		out["notification"] = top
	}
	c.JSON(http.StatusOK, out)
}

// POST /proactive/notify — push the top nudge through the alert bus
func (pc *ProactiveController) Notify(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := pc.Svc.Notify(uid, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
