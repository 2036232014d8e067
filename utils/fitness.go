package utils

import (
	"math"
	"strings"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth, also used for input validation at the controller.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,   // little or no exercise
	"light":       1.375, // light exercise 1-3 days/week
	"moderate":    1.55,  // moderate exercise 3-5 days/week
	"active":      1.725, // hard exercise 6-7 days/week
	"very_active": 1.9,   // very hard exercise, physical job
}

func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[strings.ToLower(level)]
	return ok
}

type MacroSplit struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

type CalorieTargets struct {
	BMR            int        `json:"bmr"`
	TDEE           int        `json:"tdee"`
	TargetCalories int        `json:"target_calories"`
	GoalMessage    string     `json:"goal_message"`
	Macros         MacroSplit `json:"macros"`
}

// CalculateDailyCalories derives BMR via Mifflin-St Jeor, TDEE via the
// activity multiplier table, then adjusts for the goal. Height must be
// positive; the caller validates before invoking.
func CalculateDailyCalories(weightKg, heightCm float64, age int, gender, activityLevel, goal string) CalorieTargets {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		mult = 1.55
	}
	tdee := bmr * mult

	target := tdee
	var goalMessage string
	switch strings.ToLower(goal) {
	case "lose":
		target = tdee - 500 // ~0.5kg/week loss
		goalMessage = "Weight Loss: 500 calorie deficit for healthy weight loss"
	case "gain":
		target = tdee + 300 // ~0.3kg/week gain
		goalMessage = "Weight Gain: 300 calorie surplus for healthy weight gain"
	default:
		goalMessage = "Weight Maintenance: Calories balanced for current weight"
	}

	// 25% protein / 45% carbs / 30% fat, at 4/4/9 kcal per gram
	return CalorieTargets{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(math.Round(target)),
		GoalMessage:    goalMessage,
		Macros: MacroSplit{
			ProteinG: int(math.Round(target * 0.25 / 4)),
			CarbsG:   int(math.Round(target * 0.45 / 4)),
			FatG:     int(math.Round(target * 0.30 / 9)),
		},
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
