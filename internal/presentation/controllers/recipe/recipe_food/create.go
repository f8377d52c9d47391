package recipe_food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateRecipeFoodController struct {
	RecipeBook usecase.RecipeBook
	Foods      usecase.FindFoodById
	Validate   *validator.Validate
}

func NewCreateRecipeFoodController(book usecase.RecipeBook, foods usecase.FindFoodById) *CreateRecipeFoodController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecipeFoodController{
		RecipeBook: book,
		Foods:      foods,
		Validate:   validate,
	}
}

type recipeFoodBody struct {
	FoodId          string  `json:"foodId" validate:"required"`
	QuantityInGrams float64 `json:"quantityInGrams" validate:"required,gt=0"`
}

func (c *CreateRecipeFoodController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body recipeFoodBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	food, ok := c.Foods.GetFoodById(body.FoodId)
	if !ok {
		return helpers.CreateErrorResponse("food not found", http.StatusNotFound)
	}

	recipeId := r.Req.PathValue("recipeId")
	if _, err := c.RecipeBook.AddFood(r.Req.Context(), recipeId, *food, body.QuantityInGrams); err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	recipe, _ := c.RecipeBook.GetRecipeById(recipeId)
	return helpers.CreateResponse(helpers.NewRecipeView(c.RecipeBook, *recipe), http.StatusCreated)
}
