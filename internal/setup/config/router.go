package config

import (
	"net/http"
	"sync"

	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/middlewares"
	"github.com/anuntech/nutrisnap-backend/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, application *app.App) {
	apiServer := http.NewServeMux()
	routes.FoodRoutes(apiServer, application)
	routes.PlateRoutes(apiServer, application)
	routes.RecipeRoutes(apiServer, application)

	var mu sync.Mutex
	server.Handle("/api/", http.StripPrefix("/api", middlewares.NoCacheHeader(middlewares.Serialize(&mu, apiServer))))
}
