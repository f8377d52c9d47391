package food_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

func (r *CustomFoodsRepository) Find(ctx context.Context) ([]models.FoodItem, error) {
	value, found, err := r.Store.Get(ctx, r.Key)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(value) == "" {
		return []models.FoodItem{}, nil
	}

	var foods []models.FoodItem
	if err := json.Unmarshal([]byte(value), &foods); err != nil {
		return nil, fmt.Errorf("error decoding custom foods from %s: %w", r.Key, err)
	}
	if foods == nil {
		foods = []models.FoodItem{}
	}

	return foods, nil
}
