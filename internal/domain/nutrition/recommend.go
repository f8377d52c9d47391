package nutrition

import (
	"math"
	"sort"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
)

const DefaultRecommendations = 3

type scoredFood struct {
	food     models.FoodItem
	distance float64
}

// Recommend ranks the catalog by how close each food's macro energy split is
// to the reference food and returns the n closest, never the reference itself.
// Foods at the same distance keep their catalog order.
func Recommend(reference models.FoodItem, catalog []models.FoodItem, n int) []models.FoodItem {
	if n <= 0 {
		n = DefaultRecommendations
	}

	target := reference.NutritionPer100g.MacroEnergy().Shares()

	scored := make([]scoredFood, 0, len(catalog))
	for _, food := range catalog {
		if food.Id == reference.Id {
			continue
		}
		scored = append(scored, scoredFood{
			food:     food,
			distance: ShareDistance(target, food.NutritionPer100g.MacroEnergy().Shares()),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].distance < scored[j].distance
	})

	if len(scored) > n {
		scored = scored[:n]
	}

	foods := make([]models.FoodItem, len(scored))
	for i, s := range scored {
		foods[i] = s.food
	}
	return foods
}

// ShareDistance is the Euclidean distance between two macro share vectors.
func ShareDistance(a, b models.MacroShares) float64 {
	dp := a.Protein - b.Protein
	dc := a.Carbs - b.Carbs
	df := a.Fat - b.Fat
	return math.Sqrt(dp*dp + dc*dc + df*df)
}
