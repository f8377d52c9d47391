package recipe_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

func (r *RecipesRepository) Find(ctx context.Context) ([]models.Recipe, error) {
	value, found, err := r.Store.Get(ctx, r.Key)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(value) == "" {
		return []models.Recipe{}, nil
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(value), &recipes); err != nil {
		return nil, fmt.Errorf("error decoding recipes from %s: %w", r.Key, err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	return recipes, nil
}
