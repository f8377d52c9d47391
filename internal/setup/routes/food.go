package routes

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/setup/adapters"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/factory"
)

func FoodRoutes(server *http.ServeMux, a *app.App) {
	server.Handle("GET /food", adapters.AdaptRoute(factory.MakeGetFoodsController(a)))
	server.Handle("GET /food/{foodId}", adapters.AdaptRoute(factory.MakeGetFoodByIdController(a)))
	server.Handle("POST /food", adapters.AdaptRoute(factory.MakeCreateFoodController(a)))
	server.Handle("PUT /food/{foodId}", adapters.AdaptRoute(factory.MakeUpdateFoodController(a)))
	server.Handle("DELETE /food/{foodId}", adapters.AdaptRoute(factory.MakeDeleteFoodController(a)))
	server.Handle("GET /food/{foodId}/recommendation", adapters.AdaptRoute(factory.MakeGetRecommendationsController(a)))
}
