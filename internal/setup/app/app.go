package app

import (
	"context"

	"github.com/anuntech/nutrisnap-backend/internal/domain/nutrition"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/food_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/recipe_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/seed"
	"github.com/go-playground/validator/v10"
)

// App holds the aggregates shared by every controller. It is built once at
// startup.
type App struct {
	Catalog *nutrition.Catalog
	Plate   *nutrition.Plate
	Recipes *nutrition.RecipeBook
	Store   usecase.KeyValueStore

	// Validate is shared by the catalog and the custom food controllers.
	Validate *validator.Validate
}

type Keys struct {
	CustomFoods string
	Recipes     string
}

func New(ctx context.Context, store usecase.KeyValueStore, keys Keys) (*App, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	catalog, err := nutrition.LoadCatalog(ctx, seed.Foods(), food_repository.NewCustomFoodsRepository(store, keys.CustomFoods), validate)
	if err != nil {
		return nil, err
	}

	recipes, err := nutrition.LoadRecipeBook(ctx, catalog, recipe_repository.NewRecipesRepository(store, keys.Recipes), nil)
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:  catalog,
		Plate:    nutrition.NewPlate(catalog, nil),
		Recipes:  recipes,
		Store:    store,
		Validate: validate,
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
