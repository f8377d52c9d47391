package nutrition

import (
	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
)

const RecentlyAddedLimit = 3

// Plate is the in-memory list of portions the user is composing. Items keep
// only the food id and are resolved against the catalog on every read.
type Plate struct {
	items         []models.PlateItem
	recentFoodIds []string
	foods         usecase.FindFoodById
	newId         IdGenerator
}

func NewPlate(foods usecase.FindFoodById, newId IdGenerator) *Plate {
	if newId == nil {
		newId = NewObjectId
	}
	return &Plate{
		foods: foods,
		newId: newId,
	}
}

// Add merges the portion into the item already holding the same food, or
// appends a new item. Non-positive quantities are rejected.
func (p *Plate) Add(food models.FoodItem, grams float64) (*models.PlateItem, error) {
	if grams <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	p.rememberFood(food.Id)

	for i := range p.items {
		if p.items[i].FoodId == food.Id {
			p.items[i].QuantityInGrams += grams
			item := p.items[i]
			return &item, nil
		}
	}

	item := models.PlateItem{
		Id:              p.newId(),
		FoodId:          food.Id,
		QuantityInGrams: grams,
	}
	p.items = append(p.items, item)

	return &item, nil
}

func (p *Plate) Remove(itemId string) {
	for i, item := range p.items {
		if item.Id == itemId {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites an item's quantity. Zero or less removes the item.
func (p *Plate) SetQuantity(itemId string, grams float64) {
	if grams <= 0 {
		p.Remove(itemId)
		return
	}
	for i := range p.items {
		if p.items[i].Id == itemId {
			p.items[i].QuantityInGrams = grams
			return
		}
	}
}

// Clear empties the plate. The recently added history is kept.
func (p *Plate) Clear() {
	p.items = nil
}

func (p *Plate) Items() []models.PlateItem {
	items := make([]models.PlateItem, len(p.items))
	copy(items, p.items)
	return items
}

func (p *Plate) Lines() []models.PlateLine {
	lines := make([]models.PlateLine, 0, len(p.items))
	for _, item := range p.items {
		line := models.PlateLine{Item: item}
		if food, ok := p.foods.GetFoodById(item.FoodId); ok {
			line.Food = food
			line.Nutrients = food.NutritionPer100g.Scale(item.QuantityInGrams)
		}
		lines = append(lines, line)
	}
	return lines
}

func (p *Plate) Totals() models.NutrientTotals {
	var totals models.NutrientTotals
	for _, item := range p.items {
		food, ok := p.foods.GetFoodById(item.FoodId)
		if !ok {
			continue
		}
		totals = totals.Add(food.NutritionPer100g.Scale(item.QuantityInGrams))
	}
	return totals
}

// MacroEnergy splits the plate's calories by macronutrient.
func (p *Plate) MacroEnergy() models.MacroEnergy {
	return p.Totals().MacroEnergy()
}

// RecentlyAdded lists the last distinct foods added, most recent first.
func (p *Plate) RecentlyAdded() []models.FoodItem {
	foods := make([]models.FoodItem, 0, len(p.recentFoodIds))
	for _, id := range p.recentFoodIds {
		if food, ok := p.foods.GetFoodById(id); ok {
			foods = append(foods, *food)
		}
	}
	return foods
}

func (p *Plate) rememberFood(foodId string) {
	recent := make([]string, 0, RecentlyAddedLimit)
	recent = append(recent, foodId)
	for _, id := range p.recentFoodIds {
		if len(recent) == RecentlyAddedLimit {
			break
		}
		if id != foodId {
			recent = append(recent, id)
		}
	}
	p.recentFoodIds = recent
}
