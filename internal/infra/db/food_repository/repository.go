package food_repository

import "github.com/anuntech/nutrisnap-backend/internal/domain/usecase"

const DefaultKey = "nutrisnap_customFoods"

// CustomFoodsRepository stores the custom foods as one JSON array under Key.
type CustomFoodsRepository struct {
	Store usecase.KeyValueStore
	Key   string
}

func NewCustomFoodsRepository(store usecase.KeyValueStore, key string) *CustomFoodsRepository {
	if key == "" {
		key = DefaultKey
	}
	return &CustomFoodsRepository{
		Store: store,
		Key:   key,
	}
}
