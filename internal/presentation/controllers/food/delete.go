package food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type DeleteFoodController struct {
	Catalog usecase.FoodCatalog
}

func NewDeleteFoodController(catalog usecase.FoodCatalog) *DeleteFoodController {
	return &DeleteFoodController{
		Catalog: catalog,
	}
}

func (c *DeleteFoodController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if err := c.Catalog.DeleteCustomFood(r.Req.Context(), r.Req.PathValue("foodId")); err != nil {
		return helpers.DomainErrorResponse(nil, err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
