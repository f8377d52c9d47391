package setup

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/config"
	"github.com/anuntech/nutrisnap-backend/internal/setup/middlewares"
)

func Server(application *app.App, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	config.SetupRoutes(mux, application)

	return middlewares.RecoveryMiddleware(
		middlewares.RequestLogger(
			middlewares.CorsMiddleware(mux, cfg.AllowedOrigins),
		),
	)
}
