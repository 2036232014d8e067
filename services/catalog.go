package services

// Eating occasions a choice can be logged under. "Favourites" is free-text
// only and never used for predictions.
var Categories = []string{
	"Daily choices",
	"Protein is calling",
	"Period is killing",
	"Desserts",
	"Cheat meals",
	"Exams",
	"Favourites",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Curated starter dishes per occasion, shown before the agent has learned
// anything. "Daily choices" is split by cuisine.
var FoodChoices = map[string]map[string][]string{
	"Daily choices": {
		"Indian":       {"Bajra Roti with Dal Palak", "Makai Roti with Chhole Masala", "Jowar Roti with Rajma Masala", "Indian-style Tomato Soup", "Spinach and Garlic Gravy", "Jowar Roti with Baingan Bharta", "Bajra Roti with Mixed Vegetable Gravy"},
		"South Indian": {"Idli Sambar", "Dosa with Coconut Chutney", "Uttapam with Onion and Capsicum", "Tomato Onion Curry", "Lemon Rice with Sambar Gravy", "Rasam Rice with Fried Potatoes", "Plain Dosa with Onion-Capsicum Curry"},
	},
	"Protein is calling": {
		"": {"Tofu Palak Gravy", "Soya Rice with Masala", "Paneer Butter Masala", "Chhole Bhature", "Rajma Chawal", "Lentil Soup with spices", "Grilled Tofu with a creamy dip", "Paneer Tikka Masala"},
	},
	"Period is killing": {
		"": {"Chocolate Ice Cream", "Spicy Noodles", "Cheese Pizza", "French Fries with Dip", "Warm Soup with Garlic Bread", "Mac & Cheese", "Hot Chocolate"},
	},
	"Desserts": {
		"": {"Gulab Jamun", "Kulfi", "Chocolate Brownie", "Fruit Salad with Ice Cream", "Ras Malai"},
	},
	"Cheat meals": {
		"": {"Veg Burger with Fries", "Loaded Nachos with Cheese", "Veggie Pizza with extra toppings", "Manchurian Gravy with Hakka Noodles", "Veg Fried Rice"},
	},
	"Exams": {
		"": {"Khichdi", "Curd Rice with pickle", "Simple Dal Roti", "Vegetable Soup", "Pav Bhaji"},
	},
}

// CategoryDishes flattens the curated map for one occasion.
func CategoryDishes(category string) []string {
	groups, ok := FoodChoices[category]
	if !ok {
		return nil
	}
	var out []string
	for _, cuisine := range []string{"", "Indian", "South Indian"} {
		out = append(out, groups[cuisine]...)
	}
	return out
}
