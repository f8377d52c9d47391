package food_repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

func (r *CustomFoodsRepository) Save(ctx context.Context, foods []models.FoodItem) error {
	if foods == nil {
		foods = []models.FoodItem{}
	}

	data, err := json.Marshal(foods)
	if err != nil {
		return fmt.Errorf("error encoding custom foods: %w", err)
	}

	return r.Store.Set(ctx, r.Key, string(data))
}
