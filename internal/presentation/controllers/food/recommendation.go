package food

import (
	"net/http"
	"strconv"

	"github.com/anuntech/nutrisnap-backend/internal/domain/nutrition"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type GetRecommendationsController struct {
	Catalog usecase.FoodCatalog
}

func NewGetRecommendationsController(catalog usecase.FoodCatalog) *GetRecommendationsController {
	return &GetRecommendationsController{
		Catalog: catalog,
	}
}

func (c *GetRecommendationsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	limit := nutrition.DefaultRecommendations
	if value := r.UrlParams.Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return helpers.CreateErrorResponse("limit must be a positive integer", http.StatusBadRequest)
		}
		limit = parsed
	}

	food, ok := c.Catalog.GetFoodById(r.Req.PathValue("foodId"))
	if !ok {
		return helpers.CreateErrorResponse("food not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(nutrition.Recommend(*food, c.Catalog.All(), limit), http.StatusOK)
}
