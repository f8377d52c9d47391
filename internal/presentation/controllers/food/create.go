package food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateFoodController struct {
	Catalog  usecase.FoodCatalog
	Validate *validator.Validate
}

func NewCreateFoodController(catalog usecase.FoodCatalog, validate *validator.Validate) *CreateFoodController {
	return &CreateFoodController{
		Catalog:  catalog,
		Validate: validate,
	}
}

func (c *CreateFoodController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body models.CustomFoodInput
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	food, err := c.Catalog.AddCustomFood(r.Req.Context(), body)
	if err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	return helpers.CreateResponse(food, http.StatusCreated)
}
