package routes

import (
	"github.com/dicoder4/MoOdMeNU/controllers"
	"github.com/dicoder4/MoOdMeNU/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything main wires up so SetupRouter stays flat.
type Controllers struct {
	Choice     *controllers.ChoiceController
	Suggestion *controllers.SuggestionController
	Pattern    *controllers.PatternController
	Fitness    *controllers.FitnessController
	Period     *controllers.PeriodController
	Proactive  *controllers.ProactiveController
	Device     *controllers.DeviceController
	Realtime   *controllers.RealtimeController
	Dev        *controllers.DevController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
	}

	choices := r.Group("/choices")
	choices.Use(middlewares.AuthMiddleware())
	{
		choices.POST("", ctl.Choice.LogChoice)
		choices.GET("", ctl.Choice.History)
		choices.GET("/categories", ctl.Choice.Categories)
		choices.POST("/recognize", ctl.Choice.Recognize)
	}

	suggestions := r.Group("/suggestions")
	suggestions.Use(middlewares.AuthMiddleware())
	{
		suggestions.POST("", ctl.Suggestion.Suggest)
		suggestions.POST("/ideas", ctl.Suggestion.CategoryIdeas)
	}

	patterns := r.Group("/patterns")
	patterns.Use(middlewares.AuthMiddleware())
	{
		patterns.GET("", ctl.Pattern.GetPatterns)
		patterns.GET("/recommendations", ctl.Pattern.Recommendations)
	}

	fitness := r.Group("/fitness")
	fitness.Use(middlewares.AuthMiddleware())
	{
		fitness.POST("/bmi", ctl.Fitness.BMI)
		fitness.POST("/calories", ctl.Fitness.Calories)
		fitness.GET("/goals", ctl.Fitness.GetGoals)
		fitness.PUT("/goals", ctl.Fitness.SaveGoals)
		fitness.POST("/meal-suggestions", ctl.Fitness.MealSuggestions)
	}

	period := r.Group("/period")
	period.Use(middlewares.AuthMiddleware())
	{
		period.GET("", ctl.Period.Get)
		period.PUT("", ctl.Period.Upsert)
	}

	proactive := r.Group("/proactive")
	proactive.Use(middlewares.AuthMiddleware())
	{
		proactive.GET("", ctl.Proactive.Suggestions)
		proactive.POST("/notify", ctl.Proactive.Notify)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middlewares.AuthMiddleware())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.POST("/toggle", controllers.ToggleNotifications)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", ctl.Device.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", ctl.Realtime.AlertsWS)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/push", ctl.Dev.PushTest)
	}

	return r
}
