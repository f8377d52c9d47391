package food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type GetFoodsController struct {
	Catalog  usecase.FoodCatalog
	Validate *validator.Validate
}

func NewGetFoodsController(catalog usecase.FoodCatalog) *GetFoodsController {
	return &GetFoodsController{
		Catalog:  catalog,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *GetFoodsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	category := models.Category(r.UrlParams.Get("category"))

	foods, err := c.Catalog.Search(category, r.UrlParams.Get("search"))
	if err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}
	if foods == nil {
		foods = []models.FoodItem{}
	}

	return helpers.CreateResponse(foods, http.StatusOK)
}
