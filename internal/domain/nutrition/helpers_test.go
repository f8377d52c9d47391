package nutrition_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/nutrition"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/food_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/kv_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/recipe_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/seed"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func assertTotals(t *testing.T, got, want models.NutrientTotals) {
	t.Helper()
	if !approx(got.Calories, want.Calories) || !approx(got.Protein, want.Protein) ||
		!approx(got.Carbs, want.Carbs) || !approx(got.Fat, want.Fat) {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

// sequentialIds returns a deterministic id generator: id-1, id-2, ...
func sequentialIds() nutrition.IdGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newCatalog(t *testing.T, store *kv_repository.MemoryStore) *nutrition.Catalog {
	t.Helper()
	catalog, err := nutrition.LoadCatalog(context.Background(), seed.Foods(), food_repository.NewCustomFoodsRepository(store, ""), nil)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return catalog
}

func newRecipeBook(t *testing.T, store *kv_repository.MemoryStore, catalog *nutrition.Catalog) *nutrition.RecipeBook {
	t.Helper()
	book, err := nutrition.LoadRecipeBook(context.Background(), catalog, recipe_repository.NewRecipesRepository(store, ""), sequentialIds())
	if err != nil {
		t.Fatalf("LoadRecipeBook: %v", err)
	}
	return book
}

func mustFood(t *testing.T, catalog *nutrition.Catalog, id string) models.FoodItem {
	t.Helper()
	food, ok := catalog.GetFoodById(id)
	if !ok {
		t.Fatalf("food %s not in catalog", id)
	}
	return *food
}
