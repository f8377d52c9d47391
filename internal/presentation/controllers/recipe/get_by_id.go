package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type GetRecipeByIdController struct {
	RecipeBook usecase.RecipeBook
}

func NewGetRecipeByIdController(book usecase.RecipeBook) *GetRecipeByIdController {
	return &GetRecipeByIdController{
		RecipeBook: book,
	}
}

func (c *GetRecipeByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipe, ok := c.RecipeBook.GetRecipeById(r.Req.PathValue("recipeId"))
	if !ok {
		return helpers.CreateErrorResponse("recipe not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(helpers.NewRecipeView(c.RecipeBook, *recipe), http.StatusOK)
}
