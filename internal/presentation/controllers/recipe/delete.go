package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type DeleteRecipeController struct {
	RecipeBook usecase.RecipeBook
}

func NewDeleteRecipeController(book usecase.RecipeBook) *DeleteRecipeController {
	return &DeleteRecipeController{
		RecipeBook: book,
	}
}

func (c *DeleteRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	c.RecipeBook.Delete(r.Req.Context(), r.Req.PathValue("recipeId"))

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
