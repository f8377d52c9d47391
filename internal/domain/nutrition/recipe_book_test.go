package nutrition_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/nutrition"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/kv_repository"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/recipe_repository"
)

func TestRecipeBookCreate(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)

	recipe, err := book.Create(ctx, "Chicken bowl", mustFood(t, catalog, "meat-1"), 200)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if recipe.Id != "id-1" || recipe.Name != "Chicken bowl" {
		t.Errorf("unexpected recipe %+v", recipe)
	}
	if len(recipe.Items) != 1 || recipe.Items[0].Id != "id-2" || recipe.Items[0].FoodId != "meat-1" || recipe.Items[0].QuantityInGrams != 200 {
		t.Errorf("unexpected items %+v", recipe.Items)
	}

	if all := book.All(); len(all) != 1 || all[0].Id != recipe.Id {
		t.Errorf("All() = %+v", all)
	}
}

func TestRecipeBookCreateValidation(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	apple := mustFood(t, catalog, "sweet-1")

	tests := []struct {
		name    string
		recipe  string
		grams   float64
		wantErr error
	}{
		{"empty name", "", 100, nutrition.ErrEmptyRecipeName},
		{"blank name", "   ", 100, nutrition.ErrEmptyRecipeName},
		{"zero grams", "Snack", 0, nutrition.ErrNonPositiveQuantity},
		{"negative grams", "Snack", -5, nutrition.ErrNonPositiveQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := book.Create(ctx, tt.recipe, apple, tt.grams); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(book.All()) != 0 {
		t.Error("rejected create changed the book")
	}
	if _, found, _ := store.Get(ctx, recipe_repository.DefaultKey); found {
		t.Error("rejected create wrote the recipe slot")
	}
}

func TestRecipeBookAddFoodAlwaysAppends(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	rice := mustFood(t, catalog, "veg-3")

	recipe, _ := book.Create(ctx, "Rice", rice, 100)
	if _, err := book.AddFood(ctx, recipe.Id, rice, 50); err != nil {
		t.Fatalf("AddFood: %v", err)
	}

	got, _ := book.GetRecipeById(recipe.Id)
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
	totals := book.Totals(*got)
	if totals.TotalGrams != 150 || !approx(totals.Calories, 195) {
		t.Errorf("totals = %+v", totals)
	}
}

func TestRecipeBookAddFoodErrors(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	apple := mustFood(t, catalog, "sweet-1")
	recipe, _ := book.Create(ctx, "Fruit", apple, 100)

	if _, err := book.AddFood(ctx, "missing", apple, 10); !errors.Is(err, nutrition.ErrRecipeNotFound) {
		t.Errorf("unknown recipe: err = %v", err)
	}
	if _, err := book.AddFood(ctx, recipe.Id, apple, 0); !errors.Is(err, nutrition.ErrNonPositiveQuantity) {
		t.Errorf("zero grams: err = %v", err)
	}
}

func TestRecipeBookRemoveLastItemKeepsRecipe(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)

	recipe, _ := book.Create(ctx, "Fruit", mustFood(t, catalog, "sweet-1"), 100)
	book.RemoveFood(ctx, recipe.Id, recipe.Items[0].Id)

	got, ok := book.GetRecipeById(recipe.Id)
	if !ok {
		t.Fatal("recipe removed with its last item")
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("Items = %#v, want empty list", got.Items)
	}
	if totals := book.Totals(*got); totals != (models.RecipeTotals{}) {
		t.Errorf("totals = %+v", totals)
	}

	value, _, _ := store.Get(ctx, recipe_repository.DefaultKey)
	var stored []models.Recipe
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].Items == nil {
		t.Errorf("stored = %s", value)
	}
}

func TestRecipeBookNoOps(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	recipe, _ := book.Create(ctx, "Fruit", mustFood(t, catalog, "sweet-1"), 100)

	book.Delete(ctx, "missing")
	book.RemoveFood(ctx, "missing", recipe.Items[0].Id)
	book.RemoveFood(ctx, recipe.Id, "missing")
	if err := book.SetItemQuantity(ctx, recipe.Id, "missing", 10); err != nil {
		t.Errorf("SetItemQuantity unknown item: %v", err)
	}

	got, _ := book.GetRecipeById(recipe.Id)
	if len(book.All()) != 1 || len(got.Items) != 1 || got.Items[0].QuantityInGrams != 100 {
		t.Errorf("no-op changed the book: %+v", book.All())
	}
}

func TestRecipeBookRename(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	recipe, _ := book.Create(ctx, "Fruit", mustFood(t, catalog, "sweet-1"), 100)

	renamed, err := book.Rename(ctx, recipe.Id, "Fruit salad")
	if err != nil || renamed.Name != "Fruit salad" {
		t.Fatalf("Rename = %+v, %v", renamed, err)
	}
	if _, err := book.Rename(ctx, recipe.Id, "  "); !errors.Is(err, nutrition.ErrEmptyRecipeName) {
		t.Errorf("blank name: err = %v", err)
	}
	if _, err := book.Rename(ctx, "missing", "Other"); !errors.Is(err, nutrition.ErrRecipeNotFound) {
		t.Errorf("unknown recipe: err = %v", err)
	}

	got, _ := book.GetRecipeById(recipe.Id)
	if got.Name != "Fruit salad" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestRecipeBookSetItemQuantity(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	recipe, _ := book.Create(ctx, "Steak", mustFood(t, catalog, "meat-2"), 100)
	itemId := recipe.Items[0].Id

	if err := book.SetItemQuantity(ctx, recipe.Id, itemId, 300); err != nil {
		t.Fatal(err)
	}
	got, _ := book.GetRecipeById(recipe.Id)
	if got.Items[0].QuantityInGrams != 300 {
		t.Errorf("quantity = %v, want 300", got.Items[0].QuantityInGrams)
	}

	if err := book.SetItemQuantity(ctx, recipe.Id, itemId, -1); err != nil {
		t.Fatal(err)
	}
	got, _ = book.GetRecipeById(recipe.Id)
	if len(got.Items) != 0 {
		t.Error("non-positive quantity should remove the item")
	}

	if err := book.SetItemQuantity(ctx, "missing", itemId, 10); !errors.Is(err, nutrition.ErrRecipeNotFound) {
		t.Errorf("unknown recipe: err = %v", err)
	}
}

func TestRecipeBookDelete(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	first, _ := book.Create(ctx, "First", mustFood(t, catalog, "sweet-1"), 100)
	second, _ := book.Create(ctx, "Second", mustFood(t, catalog, "sweet-2"), 100)

	book.Delete(ctx, first.Id)

	all := book.All()
	if len(all) != 1 || all[0].Id != second.Id {
		t.Errorf("All() = %+v", all)
	}
}

func TestRecipeBookPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)

	recipe, _ := book.Create(ctx, "Bowl", mustFood(t, catalog, "meat-1"), 150)
	book.AddFood(ctx, recipe.Id, mustFood(t, catalog, "veg-3"), 200)

	reloaded := newRecipeBook(t, store, catalog)
	got, ok := reloaded.GetRecipeById(recipe.Id)
	if !ok {
		t.Fatal("recipe not persisted")
	}
	if got.Name != "Bowl" || len(got.Items) != 2 || got.Items[1].FoodId != "veg-3" {
		t.Errorf("reloaded %+v", got)
	}
}

func TestRecipeBookReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	recipe, _ := book.Create(ctx, "Bowl", mustFood(t, catalog, "meat-1"), 150)

	recipe.Items[0].QuantityInGrams = 1
	got, _ := book.GetRecipeById(recipe.Id)
	got.Items[0].QuantityInGrams = 2

	again, _ := book.GetRecipeById(recipe.Id)
	if again.Items[0].QuantityInGrams != 150 {
		t.Errorf("internal state changed to %v", again.Items[0].QuantityInGrams)
	}
}

func TestRecipeTotalsSkipDeletedFood(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)

	custom, _ := catalog.AddCustomFood(ctx, models.CustomFoodInput{Name: "Sauce", Category: models.CategoryVegetarian, Calories: 300, Fat: 30})
	recipe, _ := book.Create(ctx, "Rice with sauce", mustFood(t, catalog, "veg-3"), 200)
	book.AddFood(ctx, recipe.Id, *custom, 50)
	catalog.DeleteCustomFood(ctx, custom.Id)

	got, _ := book.GetRecipeById(recipe.Id)
	totals := book.Totals(*got)
	if len(got.Items) != 2 {
		t.Errorf("recipe lost the deleted food item")
	}
	if totals.TotalGrams != 200 || !approx(totals.Calories, 260) {
		t.Errorf("totals = %+v", totals)
	}
}

func TestAddRecipeToPlate(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	catalog := newCatalog(t, store)
	book := newRecipeBook(t, store, catalog)
	plate := nutrition.NewPlate(catalog, sequentialIds())

	custom, _ := catalog.AddCustomFood(ctx, models.CustomFoodInput{Name: "Sauce", Category: models.CategoryVegetarian, Calories: 300})
	recipe, _ := book.Create(ctx, "Bowl", mustFood(t, catalog, "meat-1"), 100)
	book.AddFood(ctx, recipe.Id, *custom, 50)
	book.AddFood(ctx, recipe.Id, mustFood(t, catalog, "meat-1"), 50)
	catalog.DeleteCustomFood(ctx, custom.Id)

	plate.Add(mustFood(t, catalog, "meat-1"), 25)

	added, err := book.AddRecipeToPlate(recipe.Id, plate)
	if err != nil {
		t.Fatalf("AddRecipeToPlate: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	items := plate.Items()
	if len(items) != 1 || items[0].FoodId != "meat-1" || items[0].QuantityInGrams != 175 {
		t.Errorf("plate items = %+v", items)
	}

	if _, err := book.AddRecipeToPlate("missing", plate); !errors.Is(err, nutrition.ErrRecipeNotFound) {
		t.Errorf("unknown recipe: err = %v", err)
	}
}

func TestLoadRecipeBookNormalizesMissingItems(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	store.Set(ctx, recipe_repository.DefaultKey, `[{"id":"r1","name":"Legacy"}]`)
	catalog := newCatalog(t, store)

	book := newRecipeBook(t, store, catalog)

	got, ok := book.GetRecipeById("r1")
	if !ok || got.Items == nil {
		t.Errorf("GetRecipeById = %+v, %v", got, ok)
	}
}

func TestLoadRecipeBookCorruptSlot(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	store.Set(ctx, recipe_repository.DefaultKey, "[{")
	catalog := newCatalog(t, store)

	if _, err := nutrition.LoadRecipeBook(ctx, catalog, recipe_repository.NewRecipesRepository(store, ""), nil); err == nil {
		t.Fatal("expected error for corrupt recipe slot")
	}
}
