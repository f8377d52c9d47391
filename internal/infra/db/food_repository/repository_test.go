package food_repository

import (
	"context"
	"testing"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/infra/db/kv_repository"
)

func TestFindMissingOrBlankSlot(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
	}{
		{"missing key", nil},
		{"empty string", ptr("")},
		{"whitespace", ptr("  \n")},
		{"json null", ptr("null")},
		{"empty array", ptr("[]")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv_repository.NewMemoryStore()
			if tt.stored != nil {
				store.Set(context.Background(), DefaultKey, *tt.stored)
			}

			foods, err := NewCustomFoodsRepository(store, "").Find(context.Background())
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if foods == nil || len(foods) != 0 {
				t.Errorf("Find = %#v, want empty list", foods)
			}
		})
	}
}

func TestFindCorruptSlot(t *testing.T) {
	store := kv_repository.NewMemoryStore()
	store.Set(context.Background(), DefaultKey, `{"id":`)

	if _, err := NewCustomFoodsRepository(store, "").Find(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSaveThenFind(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()
	repo := NewCustomFoodsRepository(store, "custom_slot")

	foods := []models.FoodItem{{
		Id:               "custom_1",
		Name:             "Protein Bar",
		Category:         models.CategorySweet,
		NutritionPer100g: models.Nutrition{Calories: 350, Protein: 30, Carbs: 35, Fat: 10},
		IsCustom:         true,
	}}
	if err := repo.Save(ctx, foods); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, found, _ := store.Get(ctx, DefaultKey); found {
		t.Error("Save wrote the default key instead of the configured one")
	}

	got, err := repo.Find(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != foods[0] {
		t.Errorf("Find = %+v", got)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := kv_repository.NewMemoryStore()

	if err := NewCustomFoodsRepository(store, "").Save(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := store.Get(ctx, DefaultKey); v != "[]" {
		t.Errorf("stored %q, want []", v)
	}
}

func ptr(s string) *string {
	return &s
}
