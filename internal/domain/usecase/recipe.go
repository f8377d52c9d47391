package usecase

import (
	"context"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

type FindRecipesRepository interface {
	Find(ctx context.Context) ([]models.Recipe, error)
}

type SaveRecipesRepository interface {
	Save(ctx context.Context, recipes []models.Recipe) error
}

type RecipesRepository interface {
	FindRecipesRepository
	SaveRecipesRepository
}

type RecipeBook interface {
	All() []models.Recipe
	GetRecipeById(id string) (*models.Recipe, bool)
	Create(ctx context.Context, name string, food models.FoodItem, grams float64) (*models.Recipe, error)
	Delete(ctx context.Context, recipeId string)
	AddFood(ctx context.Context, recipeId string, food models.FoodItem, grams float64) (*models.RecipeFoodItem, error)
	RemoveFood(ctx context.Context, recipeId string, itemId string)
	Rename(ctx context.Context, recipeId string, newName string) (*models.Recipe, error)
	SetItemQuantity(ctx context.Context, recipeId string, itemId string, grams float64) error
	Totals(recipe models.Recipe) models.RecipeTotals
	AddRecipeToPlate(recipeId string, plate AddToPlate) (int, error)
}
