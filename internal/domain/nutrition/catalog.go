package nutrition

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/go-playground/validator/v10"
)

const DefaultCustomFoodImageUrl = "https://picsum.photos/300/200?grayscale&blur=1"

// Catalog is every known food: the fixed seed list followed by the custom
// foods in creation order. Only custom foods are persisted.
type Catalog struct {
	foods      []models.FoodItem
	seedIds    map[string]bool
	repository usecase.CustomFoodsRepository
	validate   *validator.Validate
}

// LoadCatalog builds the catalog from the seed list and the stored custom
// foods. A missing custom slot gives an empty custom list. validate checks
// custom food input; nil gets a fresh validator.
func LoadCatalog(ctx context.Context, seed []models.FoodItem, repository usecase.CustomFoodsRepository, validate *validator.Validate) (*Catalog, error) {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	c := &Catalog{
		foods:      make([]models.FoodItem, 0, len(seed)),
		seedIds:    make(map[string]bool, len(seed)),
		repository: repository,
		validate:   validate,
	}

	for _, food := range seed {
		if c.seedIds[food.Id] {
			return nil, fmt.Errorf("duplicated seed food id %q", food.Id)
		}
		food.IsCustom = false
		c.seedIds[food.Id] = true
		c.foods = append(c.foods, food)
	}

	custom, err := repository.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom foods: %w", err)
	}

	seen := make(map[string]bool, len(custom))
	for _, food := range custom {
		if c.seedIds[food.Id] || seen[food.Id] {
			log.Printf("ignoring stored custom food with duplicated id %q", food.Id)
			continue
		}
		seen[food.Id] = true
		food.IsCustom = true
		c.foods = append(c.foods, food)
	}

	return c, nil
}

func (c *Catalog) All() []models.FoodItem {
	foods := make([]models.FoodItem, len(c.foods))
	copy(foods, c.foods)
	return foods
}

func (c *Catalog) GetFoodById(id string) (*models.FoodItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, false
	}
	food := c.foods[i]
	return &food, true
}

func (c *Catalog) ByCategory(category models.Category) ([]models.FoodItem, error) {
	if category == models.CategoryAll || category == "" {
		return c.All(), nil
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	var foods []models.FoodItem
	for _, food := range c.foods {
		if food.Category == category {
			foods = append(foods, food)
		}
	}
	return foods, nil
}

// Search filters the category listing by a case-insensitive substring of the
// food name. An empty term returns the whole listing.
func (c *Catalog) Search(category models.Category, term string) ([]models.FoodItem, error) {
	foods, err := c.ByCategory(category)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return foods, nil
	}

	var result []models.FoodItem
	for _, food := range foods {
		if strings.Contains(strings.ToLower(food.Name), term) {
			result = append(result, food)
		}
	}
	return result, nil
}

func (c *Catalog) AddCustomFood(ctx context.Context, input models.CustomFoodInput) (*models.FoodItem, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	food := models.FoodItem{
		Id:               newCustomFoodId(),
		Name:             input.Name,
		Category:         input.Category,
		ImageUrl:         DefaultCustomFoodImageUrl,
		NutritionPer100g: input.Nutrition(),
		IsCustom:         true,
	}
	c.foods = append(c.foods, food)
	c.persist(ctx)

	return &food, nil
}

// UpdateCustomFood replaces the profile of a custom food, keeping its id, so
// every plate and recipe referencing it picks up the new values.
func (c *Catalog) UpdateCustomFood(ctx context.Context, id string, input models.CustomFoodInput) (*models.FoodItem, error) {
	i, err := c.customIndexOf(id)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	food := c.foods[i]
	food.Name = input.Name
	food.Category = input.Category
	food.NutritionPer100g = input.Nutrition()
	c.foods[i] = food
	c.persist(ctx)

	return &food, nil
}

func (c *Catalog) DeleteCustomFood(ctx context.Context, id string) error {
	i, err := c.customIndexOf(id)
	if err != nil {
		return err
	}

	c.foods = append(c.foods[:i], c.foods[i+1:]...)
	c.persist(ctx)

	return nil
}

func (c *Catalog) indexOf(id string) int {
	for i, food := range c.foods {
		if food.Id == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) customIndexOf(id string) (int, error) {
	if c.seedIds[id] {
		return -1, ErrFoodNotCustom
	}
	i := c.indexOf(id)
	if i < 0 {
		return -1, ErrFoodNotFound
	}
	return i, nil
}

func (c *Catalog) customFoods() []models.FoodItem {
	custom := make([]models.FoodItem, 0, len(c.foods)-len(c.seedIds))
	for _, food := range c.foods {
		if food.IsCustom {
			custom = append(custom, food)
		}
	}
	return custom
}

// persist writes the custom slot. A failed write is logged and the in-memory
// change is kept.
func (c *Catalog) persist(ctx context.Context) {
	if err := c.repository.Save(ctx, c.customFoods()); err != nil {
		log.Printf("error saving custom foods: %v", err)
	}
}
