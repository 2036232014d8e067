package main

import (
	"log"

	"github.com/dicoder4/MoOdMeNU/config"
	"github.com/dicoder4/MoOdMeNU/controllers"
	"github.com/dicoder4/MoOdMeNU/routes"
	"github.com/dicoder4/MoOdMeNU/services"
	"github.com/dicoder4/MoOdMeNU/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("failed to init push service: %v", err)
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Fatalf("failed to init rekognition: %v", err)
	}

	choiceSvc := services.NewChoiceService(config.DB)
	gemini := services.NewGeminiService()
	suggestionSvc := services.NewSuggestionService(choiceSvc, gemini)
	fitnessSvc := services.NewFitnessService(config.DB, choiceSvc)
	patternSvc := services.NewPatternService(choiceSvc)
	periodSvc := &services.PeriodService{}
	bus := services.NewAlertBus(config.DB, hub, push)
	proactiveSvc := services.NewProactiveService(choiceSvc, periodSvc, bus)

	r := routes.SetupRouter(routes.Controllers{
		Choice:     controllers.NewChoiceController(choiceSvc, rek),
		Suggestion: controllers.NewSuggestionController(suggestionSvc, fitnessSvc, gemini),
		Pattern:    controllers.NewPatternController(patternSvc),
		Fitness:    controllers.NewFitnessController(fitnessSvc),
		Period:     controllers.NewPeriodController(periodSvc),
		Proactive:  controllers.NewProactiveController(proactiveSvc),
		Device:     controllers.NewDeviceController(push),
		Realtime:   controllers.NewRealtimeController(hub),
		Dev:        controllers.NewDevController(push),
	})
	r.Run(":8080")
}
