package usecase

import "github.com/anuntech/nutrisnap-backend/internal/domain/models"

type AddToPlate interface {
	Add(food models.FoodItem, grams float64) (*models.PlateItem, error)
}

type Plate interface {
	AddToPlate
	Remove(itemId string)
	SetQuantity(itemId string, grams float64)
	Clear()
	Items() []models.PlateItem
	Lines() []models.PlateLine
	RecentlyAdded() []models.FoodItem
	Totals() models.NutrientTotals
	MacroEnergy() models.MacroEnergy
}
