package helpers

import (
	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
)

type RecipeView struct {
	models.Recipe
	Totals models.RecipeTotals `json:"totals"`
}

func NewRecipeView(book usecase.RecipeBook, recipe models.Recipe) RecipeView {
	return RecipeView{
		Recipe: recipe,
		Totals: book.Totals(recipe),
	}
}

type FoodView struct {
	models.FoodItem
	MacroShares models.MacroShares `json:"macroShares"`
}

func NewFoodView(food models.FoodItem) FoodView {
	return FoodView{
		FoodItem:    food,
		MacroShares: food.NutritionPer100g.MacroEnergy().Shares(),
	}
}

type PlateView struct {
	Items         []models.PlateLine    `json:"items"`
	Totals        models.NutrientTotals `json:"totals"`
	MacroEnergy   models.MacroEnergy    `json:"macroEnergy"`
	RecentlyAdded []models.FoodItem     `json:"recentlyAdded"`
}

func NewPlateView(plate usecase.Plate) PlateView {
	return PlateView{
		Items:         plate.Lines(),
		Totals:        plate.Totals(),
		MacroEnergy:   plate.MacroEnergy(),
		RecentlyAdded: plate.RecentlyAdded(),
	}
}
