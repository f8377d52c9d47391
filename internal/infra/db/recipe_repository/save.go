package recipe_repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

func (r *RecipesRepository) Save(ctx context.Context, recipes []models.Recipe) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("error encoding recipes: %w", err)
	}

	return r.Store.Set(ctx, r.Key, string(data))
}
