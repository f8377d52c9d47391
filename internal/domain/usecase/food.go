package usecase

import (
	"context"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

type FindCustomFoodsRepository interface {
	Find(ctx context.Context) ([]models.FoodItem, error)
}

type SaveCustomFoodsRepository interface {
	Save(ctx context.Context, foods []models.FoodItem) error
}

type CustomFoodsRepository interface {
	FindCustomFoodsRepository
	SaveCustomFoodsRepository
}

type FindFoodById interface {
	GetFoodById(id string) (*models.FoodItem, bool)
}

type FoodCatalog interface {
	FindFoodById
	All() []models.FoodItem
	ByCategory(category models.Category) ([]models.FoodItem, error)
	Search(category models.Category, term string) ([]models.FoodItem, error)
	AddCustomFood(ctx context.Context, input models.CustomFoodInput) (*models.FoodItem, error)
	UpdateCustomFood(ctx context.Context, id string, input models.CustomFoodInput) (*models.FoodItem, error)
	DeleteCustomFood(ctx context.Context, id string) error
}
