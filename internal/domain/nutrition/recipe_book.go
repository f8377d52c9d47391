package nutrition

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
)

// RecipeBook holds the user's recipes and writes them back to the recipe
// slot after every change.
type RecipeBook struct {
	recipes    []models.Recipe
	foods      usecase.FindFoodById
	repository usecase.RecipesRepository
	newId      IdGenerator
}

func LoadRecipeBook(ctx context.Context, foods usecase.FindFoodById, repository usecase.RecipesRepository, newId IdGenerator) (*RecipeBook, error) {
	if newId == nil {
		newId = NewObjectId
	}

	recipes, err := repository.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	for i := range recipes {
		if recipes[i].Items == nil {
			recipes[i].Items = []models.RecipeFoodItem{}
		}
	}

	return &RecipeBook{
		recipes:    recipes,
		foods:      foods,
		repository: repository,
		newId:      newId,
	}, nil
}

func (b *RecipeBook) All() []models.Recipe {
	recipes := make([]models.Recipe, len(b.recipes))
	for i, recipe := range b.recipes {
		recipes[i] = cloneRecipe(recipe)
	}
	return recipes
}

func (b *RecipeBook) GetRecipeById(id string) (*models.Recipe, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return nil, false
	}
	recipe := cloneRecipe(b.recipes[i])
	return &recipe, true
}

// Create starts a recipe with a single portion and returns it.
func (b *RecipeBook) Create(ctx context.Context, name string, food models.FoodItem, grams float64) (*models.Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyRecipeName
	}
	if grams <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	recipe := models.Recipe{
		Id:   b.newId(),
		Name: name,
		Items: []models.RecipeFoodItem{{
			Id:              b.newId(),
			FoodId:          food.Id,
			QuantityInGrams: grams,
		}},
	}
	b.recipes = append(b.recipes, recipe)
	b.persist(ctx)

	created := cloneRecipe(recipe)
	return &created, nil
}

func (b *RecipeBook) Delete(ctx context.Context, recipeId string) {
	i := b.indexOf(recipeId)
	if i < 0 {
		return
	}
	b.recipes = append(b.recipes[:i], b.recipes[i+1:]...)
	b.persist(ctx)
}

// AddFood always appends a new portion, even when the recipe already holds
// the same food.
func (b *RecipeBook) AddFood(ctx context.Context, recipeId string, food models.FoodItem, grams float64) (*models.RecipeFoodItem, error) {
	if grams <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	i := b.indexOf(recipeId)
	if i < 0 {
		return nil, ErrRecipeNotFound
	}

	item := models.RecipeFoodItem{
		Id:              b.newId(),
		FoodId:          food.Id,
		QuantityInGrams: grams,
	}
	b.recipes[i].Items = append(b.recipes[i].Items, item)
	b.persist(ctx)

	return &item, nil
}

// RemoveFood drops a portion. A recipe left without portions is kept.
func (b *RecipeBook) RemoveFood(ctx context.Context, recipeId string, itemId string) {
	i := b.indexOf(recipeId)
	if i < 0 {
		return
	}
	j := b.recipes[i].FindItem(itemId)
	if j < 0 {
		return
	}
	items := b.recipes[i].Items
	b.recipes[i].Items = append(items[:j:j], items[j+1:]...)
	b.persist(ctx)
}

func (b *RecipeBook) Rename(ctx context.Context, recipeId string, newName string) (*models.Recipe, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, ErrEmptyRecipeName
	}
	i := b.indexOf(recipeId)
	if i < 0 {
		return nil, ErrRecipeNotFound
	}

	b.recipes[i].Name = newName
	b.persist(ctx)

	recipe := cloneRecipe(b.recipes[i])
	return &recipe, nil
}

// SetItemQuantity overwrites a portion's quantity. Zero or less removes the
// portion.
func (b *RecipeBook) SetItemQuantity(ctx context.Context, recipeId string, itemId string, grams float64) error {
	i := b.indexOf(recipeId)
	if i < 0 {
		return ErrRecipeNotFound
	}
	if grams <= 0 {
		b.RemoveFood(ctx, recipeId, itemId)
		return nil
	}

	j := b.recipes[i].FindItem(itemId)
	if j < 0 {
		return nil
	}
	b.recipes[i].Items[j].QuantityInGrams = grams
	b.persist(ctx)

	return nil
}

func (b *RecipeBook) Totals(recipe models.Recipe) models.RecipeTotals {
	return recipe.CalculateTotals(b.foods.GetFoodById)
}

// AddRecipeToPlate adds every portion whose food still exists to the plate
// and returns how many were added.
func (b *RecipeBook) AddRecipeToPlate(recipeId string, plate usecase.AddToPlate) (int, error) {
	i := b.indexOf(recipeId)
	if i < 0 {
		return 0, ErrRecipeNotFound
	}

	added := 0
	for _, item := range b.recipes[i].Items {
		food, ok := b.foods.GetFoodById(item.FoodId)
		if !ok {
			continue
		}
		if _, err := plate.Add(*food, item.QuantityInGrams); err != nil {
			log.Printf("skipping recipe item %s: %v", item.Id, err)
			continue
		}
		added++
	}

	return added, nil
}

func (b *RecipeBook) indexOf(id string) int {
	for i, recipe := range b.recipes {
		if recipe.Id == id {
			return i
		}
	}
	return -1
}

func (b *RecipeBook) persist(ctx context.Context) {
	if err := b.repository.Save(ctx, b.recipes); err != nil {
		log.Printf("error saving recipes: %v", err)
	}
}

func cloneRecipe(recipe models.Recipe) models.Recipe {
	items := make([]models.RecipeFoodItem, len(recipe.Items))
	copy(items, recipe.Items)
	recipe.Items = items
	return recipe
}
