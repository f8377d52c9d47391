package models

type Category string

const (
	CategorySweet      Category = "Sweet"
	CategoryVegetarian Category = "Vegetarian"
	CategoryMeat       Category = "Meat"

	// CategoryAll is a listing filter, never stored on a food.
	CategoryAll Category = "All"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySweet, CategoryVegetarian, CategoryMeat:
		return true
	}
	return false
}

type FoodItem struct {
	Id               string    `json:"id"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	ImageUrl         string    `json:"imageUrl,omitempty"`
	NutritionPer100g Nutrition `json:"nutritionPer100g"`
	IsCustom         bool      `json:"isCustom"`
}

// CustomFoodInput is the user-supplied part of a custom food.
type CustomFoodInput struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Category Category `json:"category" validate:"required,oneof=Sweet Vegetarian Meat"`
	Calories float64  `json:"calories" validate:"gte=0"`
	Protein  float64  `json:"protein" validate:"gte=0"`
	Carbs    float64  `json:"carbs" validate:"gte=0"`
	Fat      float64  `json:"fat" validate:"gte=0"`
}

func (i CustomFoodInput) Nutrition() Nutrition {
	return Nutrition{
		Calories: i.Calories,
		Protein:  i.Protein,
		Carbs:    i.Carbs,
		Fat:      i.Fat,
	}
}
