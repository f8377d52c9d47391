package recipe

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type AddRecipeToPlateController struct {
	RecipeBook usecase.RecipeBook
	Plate      usecase.Plate
}

func NewAddRecipeToPlateController(book usecase.RecipeBook, plate usecase.Plate) *AddRecipeToPlateController {
	return &AddRecipeToPlateController{
		RecipeBook: book,
		Plate:      plate,
	}
}

type addRecipeToPlateResponse struct {
	Added int               `json:"added"`
	Plate helpers.PlateView `json:"plate"`
}

func (c *AddRecipeToPlateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	added, err := c.RecipeBook.AddRecipeToPlate(r.Req.PathValue("recipeId"), c.Plate)
	if err != nil {
		return helpers.DomainErrorResponse(nil, err)
	}

	return helpers.CreateResponse(&addRecipeToPlateResponse{
		Added: added,
		Plate: helpers.NewPlateView(c.Plate),
	}, http.StatusOK)
}
