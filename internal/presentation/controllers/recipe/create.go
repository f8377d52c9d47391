package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateRecipeController struct {
	RecipeBook usecase.RecipeBook
	Foods      usecase.FindFoodById
	Validate   *validator.Validate
}

func NewCreateRecipeController(book usecase.RecipeBook, foods usecase.FindFoodById) *CreateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecipeController{
		RecipeBook: book,
		Foods:      foods,
		Validate:   validate,
	}
}

type CreateRecipeBody struct {
	Name            string  `json:"name" validate:"required,max=255"`
	FoodId          string  `json:"foodId" validate:"required"`
	QuantityInGrams float64 `json:"quantityInGrams" validate:"required,gt=0"`
}

func (c *CreateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecipeBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	food, ok := c.Foods.GetFoodById(body.FoodId)
	if !ok {
		return helpers.CreateErrorResponse("food not found", http.StatusNotFound)
	}

	recipe, err := c.RecipeBook.Create(r.Req.Context(), body.Name, *food, body.QuantityInGrams)
	if err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	return helpers.CreateResponse(helpers.NewRecipeView(c.RecipeBook, *recipe), http.StatusCreated)
}
