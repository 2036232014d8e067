package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

type BMIResult struct {
	BMI       float64 `json:"bmi"`
	Category  string  `json:"category"`
	Insight   string  `json:"health_insight"`
	MealFocus string  `json:"meal_focus"`
}

// fixed advisory strings per category, not computed
var bmiInsights = map[string][2]string{
	"Underweight":   {"You may need to increase your caloric intake with nutrient-dense foods.", "High-calorie, nutrient-rich meals"},
	"Normal weight": {"Great! You're in a healthy weight range. Focus on maintaining balanced nutrition.", "Balanced, varied meals"},
	"Overweight":    {"Consider reducing caloric intake while maintaining nutrient density.", "Lower-calorie, high-fiber meals"},
	"Obese":         {"Focus on gradual weight loss through balanced nutrition and portion control.", "Portion-controlled, nutrient-dense meals"},
}

// BMIInsight bundles the BMI value with the category lookup.
func BMIInsight(heightCm, weightKg float64) (*BMIResult, error) {
	bmi, err := CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}
	cat := BMICategory(bmi)
	texts := bmiInsights[cat]
	return &BMIResult{
		BMI:       roundTo(bmi, 1),
		Category:  cat,
		Insight:   texts[0],
		MealFocus: texts[1],
	}, nil
}
