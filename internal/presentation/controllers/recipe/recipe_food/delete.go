package recipe_food

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type DeleteRecipeFoodController struct {
	RecipeBook usecase.RecipeBook
}

func NewDeleteRecipeFoodController(book usecase.RecipeBook) *DeleteRecipeFoodController {
	return &DeleteRecipeFoodController{
		RecipeBook: book,
	}
}

func (c *DeleteRecipeFoodController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	c.RecipeBook.RemoveFood(r.Req.Context(), r.Req.PathValue("recipeId"), r.Req.PathValue("itemId"))

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
