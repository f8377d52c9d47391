package recipe_food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type UpdateRecipeFoodController struct {
	RecipeBook usecase.RecipeBook
	Validate   *validator.Validate
}

func NewUpdateRecipeFoodController(book usecase.RecipeBook) *UpdateRecipeFoodController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateRecipeFoodController{
		RecipeBook: book,
		Validate:   validate,
	}
}

// Zero or less removes the item from the recipe.
type updateRecipeFoodBody struct {
	QuantityInGrams *float64 `json:"quantityInGrams" validate:"required"`
}

func (c *UpdateRecipeFoodController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body updateRecipeFoodBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	recipeId := r.Req.PathValue("recipeId")
	err := c.RecipeBook.SetItemQuantity(r.Req.Context(), recipeId, r.Req.PathValue("itemId"), *body.QuantityInGrams)
	if err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	recipe, _ := c.RecipeBook.GetRecipeById(recipeId)
	return helpers.CreateResponse(helpers.NewRecipeView(c.RecipeBook, *recipe), http.StatusOK)
}
