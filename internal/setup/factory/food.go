package factory

import (
	controllers "github.com/anuntech/nutrisnap-backend/internal/presentation/controllers/food"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
)

func MakeGetFoodsController(a *app.App) *controllers.GetFoodsController {
	return controllers.NewGetFoodsController(a.Catalog)
}

func MakeGetFoodByIdController(a *app.App) *controllers.GetFoodByIdController {
	return controllers.NewGetFoodByIdController(a.Catalog)
}

func MakeCreateFoodController(a *app.App) *controllers.CreateFoodController {
	return controllers.NewCreateFoodController(a.Catalog, a.Validate)
}

func MakeUpdateFoodController(a *app.App) *controllers.UpdateFoodController {
	return controllers.NewUpdateFoodController(a.Catalog, a.Validate)
}

func MakeDeleteFoodController(a *app.App) *controllers.DeleteFoodController {
	return controllers.NewDeleteFoodController(a.Catalog)
}

func MakeGetRecommendationsController(a *app.App) *controllers.GetRecommendationsController {
	return controllers.NewGetRecommendationsController(a.Catalog)
}
