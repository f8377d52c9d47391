package routes

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/setup/adapters"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/factory"
)

func RecipeRoutes(server *http.ServeMux, a *app.App) {
	server.Handle("GET /recipe", adapters.AdaptRoute(factory.MakeGetRecipesController(a)))
	server.Handle("POST /recipe", adapters.AdaptRoute(factory.MakeCreateRecipeController(a)))
	server.Handle("GET /recipe/{recipeId}", adapters.AdaptRoute(factory.MakeGetRecipeByIdController(a)))
	server.Handle("PUT /recipe/{recipeId}", adapters.AdaptRoute(factory.MakeUpdateRecipeController(a)))
	server.Handle("DELETE /recipe/{recipeId}", adapters.AdaptRoute(factory.MakeDeleteRecipeController(a)))
	server.Handle("GET /recipe/{recipeId}/export", adapters.AdaptRoute(factory.MakeExportRecipeController(a)))
	server.Handle("POST /recipe/{recipeId}/plate", adapters.AdaptRoute(factory.MakeAddRecipeToPlateController(a)))

	server.Handle("POST /recipe/{recipeId}/food", adapters.AdaptRoute(factory.MakeCreateRecipeFoodController(a)))
	server.Handle("PUT /recipe/{recipeId}/food/{itemId}", adapters.AdaptRoute(factory.MakeUpdateRecipeFoodController(a)))
	server.Handle("DELETE /recipe/{recipeId}/food/{itemId}", adapters.AdaptRoute(factory.MakeDeleteRecipeFoodController(a)))
}
