package factory

import (
	controllers "github.com/anuntech/nutrisnap-backend/internal/presentation/controllers/recipe"
	controllers_recipe "github.com/anuntech/nutrisnap-backend/internal/presentation/controllers/recipe/recipe_food"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
)

func MakeGetRecipesController(a *app.App) *controllers.GetRecipesController {
	return controllers.NewGetRecipesController(a.Recipes)
}

func MakeGetRecipeByIdController(a *app.App) *controllers.GetRecipeByIdController {
	return controllers.NewGetRecipeByIdController(a.Recipes)
}

func MakeCreateRecipeController(a *app.App) *controllers.CreateRecipeController {
	return controllers.NewCreateRecipeController(a.Recipes, a.Catalog)
}

func MakeUpdateRecipeController(a *app.App) *controllers.UpdateRecipeController {
	return controllers.NewUpdateRecipeController(a.Recipes)
}

func MakeDeleteRecipeController(a *app.App) *controllers.DeleteRecipeController {
	return controllers.NewDeleteRecipeController(a.Recipes)
}

func MakeAddRecipeToPlateController(a *app.App) *controllers.AddRecipeToPlateController {
	return controllers.NewAddRecipeToPlateController(a.Recipes, a.Plate)
}

func MakeExportRecipeController(a *app.App) *controllers.ExportRecipeController {
	return controllers.NewExportRecipeController(a.Recipes, a.Catalog)
}

func MakeCreateRecipeFoodController(a *app.App) *controllers_recipe.CreateRecipeFoodController {
	return controllers_recipe.NewCreateRecipeFoodController(a.Recipes, a.Catalog)
}

func MakeUpdateRecipeFoodController(a *app.App) *controllers_recipe.UpdateRecipeFoodController {
	return controllers_recipe.NewUpdateRecipeFoodController(a.Recipes)
}

func MakeDeleteRecipeFoodController(a *app.App) *controllers_recipe.DeleteRecipeFoodController {
	return controllers_recipe.NewDeleteRecipeFoodController(a.Recipes)
}
