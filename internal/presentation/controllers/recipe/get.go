package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type GetRecipesController struct {
	RecipeBook usecase.RecipeBook
}

func NewGetRecipesController(book usecase.RecipeBook) *GetRecipesController {
	return &GetRecipesController{
		RecipeBook: book,
	}
}

func (c *GetRecipesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipes := c.RecipeBook.All()

	views := make([]helpers.RecipeView, len(recipes))
	for i, recipe := range recipes {
		views[i] = helpers.NewRecipeView(c.RecipeBook, recipe)
	}

	return helpers.CreateResponse(views, http.StatusOK)
}
