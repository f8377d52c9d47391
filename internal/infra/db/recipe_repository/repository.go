package recipe_repository

import "github.com/anuntech/nutrisnap-backend/internal/domain/usecase"

const DefaultKey = "nutrisnap_recipes"

// RecipesRepository stores every recipe as one JSON array under Key.
type RecipesRepository struct {
	Store usecase.KeyValueStore
	Key   string
}

func NewRecipesRepository(store usecase.KeyValueStore, key string) *RecipesRepository {
	if key == "" {
		key = DefaultKey
	}
	return &RecipesRepository{
		Store: store,
		Key:   key,
	}
}
