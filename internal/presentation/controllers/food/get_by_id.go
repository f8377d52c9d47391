package food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type GetFoodByIdController struct {
	Catalog usecase.FoodCatalog
}

func NewGetFoodByIdController(catalog usecase.FoodCatalog) *GetFoodByIdController {
	return &GetFoodByIdController{
		Catalog: catalog,
	}
}

func (c *GetFoodByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	food, ok := c.Catalog.GetFoodById(r.Req.PathValue("foodId"))
	if !ok {
		return helpers.CreateErrorResponse("food not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(helpers.NewFoodView(*food), http.StatusOK)
}
