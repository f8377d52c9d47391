package routes

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/setup/adapters"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/factory"
)

func PlateRoutes(server *http.ServeMux, a *app.App) {
	server.Handle("GET /plate", adapters.AdaptRoute(factory.MakeGetPlateController(a)))
	server.Handle("DELETE /plate", adapters.AdaptRoute(factory.MakeClearPlateController(a)))
	server.Handle("GET /plate/export", adapters.AdaptRoute(factory.MakeExportPlateController(a)))
	server.Handle("POST /plate/item", adapters.AdaptRoute(factory.MakeAddPlateItemController(a)))
	server.Handle("PUT /plate/item/{itemId}", adapters.AdaptRoute(factory.MakeUpdatePlateItemController(a)))
	server.Handle("DELETE /plate/item/{itemId}", adapters.AdaptRoute(factory.MakeDeletePlateItemController(a)))
}
