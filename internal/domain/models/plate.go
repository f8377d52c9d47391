package models

type PlateItem struct {
	Id              string  `json:"id"`
	FoodId          string  `json:"foodId"`
	QuantityInGrams float64 `json:"quantityInGrams"`
}

// PlateLine is a plate item joined with its food. Food is nil when the food
// no longer exists in the catalog.
type PlateLine struct {
	Item      PlateItem      `json:"item"`
	Food      *FoodItem      `json:"food"`
	Nutrients NutrientTotals `json:"nutrients"`
}
