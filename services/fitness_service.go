package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dicoder4/MoOdMeNU/models"
	"github.com/dicoder4/MoOdMeNU/utils"
)

type FitnessService struct {
	DB    *gorm.DB
	Store HistoryStore
}

func NewFitnessService(db *gorm.DB, store HistoryStore) *FitnessService {
	return &FitnessService{DB: db, Store: store}
}

// SaveGoals computes calorie targets from the biometrics and upserts the
// user's single FitnessGoal row.
func (s *FitnessService) SaveGoals(userID uint, weightKg, heightCm float64, age int, gender, activityLevel, goal string) (models.FitnessGoal, utils.CalorieTargets, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return models.FitnessGoal{}, utils.CalorieTargets{}, fmt.Errorf("weight, height and age must be positive")
	}
	if !utils.ValidActivityLevel(activityLevel) {
		return models.FitnessGoal{}, utils.CalorieTargets{}, fmt.Errorf("unknown activity level %q", activityLevel)
	}

	targets := utils.CalculateDailyCalories(weightKg, heightCm, age, gender, activityLevel, goal)

	var fg models.FitnessGoal
	err := s.DB.Where("user_id = ?", userID).First(&fg).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return models.FitnessGoal{}, utils.CalorieTargets{}, err
	}

	fg.UserID = userID
	fg.WeightKg = weightKg
	fg.HeightCm = heightCm
	fg.Age = age
	fg.Gender = strings.ToLower(gender)
	fg.ActivityLevel = strings.ToLower(activityLevel)
	fg.Goal = strings.ToLower(goal)
	fg.BMR = targets.BMR
	fg.TDEE = targets.TDEE
	fg.TargetCalories = targets.TargetCalories
	fg.ProteinG = targets.Macros.ProteinG
	fg.CarbsG = targets.Macros.CarbsG
	fg.FatG = targets.Macros.FatG

	if err := s.DB.Save(&fg).Error; err != nil {
		return models.FitnessGoal{}, utils.CalorieTargets{}, err
	}
	return fg, targets, nil
}

func (s *FitnessService) GetGoals(userID uint) (models.FitnessGoal, error) {
	var fg models.FitnessGoal
	err := s.DB.Where("user_id = ?", userID).First(&fg).Error
	return fg, err
}

// fitnessMeals is the curated catalog used when the user wants goal-aligned
// picks rather than model-generated ones.
var fitnessMeals = map[string][]CandidateDish{
	"breakfast": {
		{Dish: "Oats with banana and peanut butter", EstimatedCals: 350, Focus: "high fiber, sustained energy", MealType: "breakfast"},
		{Dish: "Egg white omelette with spinach", EstimatedCals: 220, Focus: "high protein, low fat", MealType: "breakfast"},
		{Dish: "Greek yogurt with berries and granola", EstimatedCals: 280, Focus: "protein, probiotics", MealType: "breakfast"},
		{Dish: "Moong dal chilla", EstimatedCals: 250, Focus: "south indian, high protein, vegetarian", MealType: "breakfast"},
		{Dish: "Poha with peanuts", EstimatedCals: 300, Focus: "light, quick energy", MealType: "breakfast"},
		{Dish: "Whole wheat toast with avocado", EstimatedCals: 320, Focus: "healthy fats", MealType: "breakfast"},
	},
	"lunch": {
		{Dish: "Grilled chicken salad", EstimatedCals: 400, Focus: "high protein, low carb", MealType: "lunch"},
		{Dish: "Rajma chawal (small portion)", EstimatedCals: 450, Focus: "north indian, plant protein", MealType: "lunch"},
		{Dish: "Quinoa bowl with roasted vegetables", EstimatedCals: 420, Focus: "complete protein, fiber", MealType: "lunch"},
		{Dish: "Dal tadka with two rotis", EstimatedCals: 480, Focus: "north indian, balanced", MealType: "lunch"},
		{Dish: "Paneer bhurji with roti", EstimatedCals: 500, Focus: "high protein, vegetarian", MealType: "lunch"},
		{Dish: "Fish curry with brown rice", EstimatedCals: 520, Focus: "omega-3, lean protein", MealType: "lunch"},
	},
	"dinner": {
		{Dish: "Grilled fish with steamed vegetables", EstimatedCals: 380, Focus: "lean protein, light", MealType: "dinner"},
		{Dish: "Palak paneer with one roti", EstimatedCals: 420, Focus: "north indian, iron rich", MealType: "dinner"},
		{Dish: "Chicken stir fry with vegetables", EstimatedCals: 400, Focus: "high protein, low carb", MealType: "dinner"},
		{Dish: "Vegetable khichdi", EstimatedCals: 350, Focus: "light, easy to digest", MealType: "dinner"},
		{Dish: "Tofu curry with quinoa", EstimatedCals: 390, Focus: "plant protein, vegan", MealType: "dinner"},
		{Dish: "Soup and grilled sandwich", EstimatedCals: 360, Focus: "light, comforting", MealType: "dinner"},
	},
	"snack": {
		{Dish: "Roasted chana", EstimatedCals: 150, Focus: "high protein, crunchy", MealType: "snack"},
		{Dish: "Apple with peanut butter", EstimatedCals: 180, Focus: "fiber, healthy fats", MealType: "snack"},
		{Dish: "Protein smoothie", EstimatedCals: 200, Focus: "high protein, post workout", MealType: "snack"},
		{Dish: "Sprouts salad", EstimatedCals: 120, Focus: "plant protein, light", MealType: "snack"},
		{Dish: "Handful of mixed nuts", EstimatedCals: 170, Focus: "healthy fats", MealType: "snack"},
	},
}

// MealSuggestions picks catalog meals that fit the user's calorie band for
// the meal, optionally filtered by a free-text food preference, then ranks
// them against the eating history.
func (s *FitnessService) MealSuggestions(userID uint, mealType string, targetCalories int, foodPreference string) (RankResult, error) {
	catalog, ok := fitnessMeals[strings.ToLower(mealType)]
	if !ok {
		return RankResult{}, fmt.Errorf("unknown meal type %q", mealType)
	}

	history, err := s.Store.Query(userID, "", 0)
	if err != nil {
		return RankResult{}, err
	}
	th := DefaultRatingThresholds()
	profile := BuildPreferenceProfile(history, th)

	pool := catalog
	if foodPreference != "" {
		pref := strings.ToLower(foodPreference)
		var filtered []CandidateDish
		for _, c := range catalog {
			if strings.Contains(strings.ToLower(c.Dish), pref) || strings.Contains(strings.ToLower(c.Focus), pref) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	minCals, maxCals := MealCalorieBand(mealType, targetCalories)
	inBand := filterByCalories(pool, minCals, maxCals)
	// a narrow band can empty the catalog; widen it rather than return nothing
	if len(inBand) < 3 {
		inBand = filterByCalories(pool, minCals-50, maxCals+50)
	}
	if len(inBand) == 0 {
		inBand = pool
	}

	return RankCandidates(inBand, profile, history, th, 5)
}

func filterByCalories(pool []CandidateDish, minCals, maxCals int) []CandidateDish {
	var out []CandidateDish
	for _, c := range pool {
		if c.EstimatedCals >= minCals && c.EstimatedCals <= maxCals {
			out = append(out, c)
		}
	}
	return out
}
