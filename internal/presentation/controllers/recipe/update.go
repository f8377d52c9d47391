package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type UpdateRecipeController struct {
	RecipeBook usecase.RecipeBook
	Validate   *validator.Validate
}

func NewUpdateRecipeController(book usecase.RecipeBook) *UpdateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateRecipeController{
		RecipeBook: book,
		Validate:   validate,
	}
}

type UpdateRecipeBody struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (c *UpdateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateRecipeBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	recipe, err := c.RecipeBook.Rename(r.Req.Context(), r.Req.PathValue("recipeId"), body.Name)
	if err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	return helpers.CreateResponse(helpers.NewRecipeView(c.RecipeBook, *recipe), http.StatusOK)
}
