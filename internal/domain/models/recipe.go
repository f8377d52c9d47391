package models

type RecipeFoodItem struct {
	Id              string  `json:"id"`
	FoodId          string  `json:"foodId"`
	QuantityInGrams float64 `json:"quantityInGrams"`
}

type Recipe struct {
	Id    string           `json:"id"`
	Name  string           `json:"name"`
	Items []RecipeFoodItem `json:"items"`
}

type RecipeTotals struct {
	NutrientTotals
	TotalGrams float64 `json:"totalGrams"`
}

// CalculateTotals sums every item whose food can be resolved. Items pointing
// at a missing food add nothing, not even their weight.
func (r *Recipe) CalculateTotals(findFood func(id string) (*FoodItem, bool)) RecipeTotals {
	var totals RecipeTotals
	for _, item := range r.Items {
		food, ok := findFood(item.FoodId)
		if !ok {
			continue
		}
		totals.NutrientTotals = totals.NutrientTotals.Add(food.NutritionPer100g.Scale(item.QuantityInGrams))
		totals.TotalGrams += item.QuantityInGrams
	}
	return totals
}

func (r *Recipe) FindItem(itemId string) int {
	for i, item := range r.Items {
		if item.Id == itemId {
			return i
		}
	}
	return -1
}
