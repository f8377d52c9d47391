package recipe

import (
	"log"
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/infra/export"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type ExportRecipeController struct {
	RecipeBook usecase.RecipeBook
	Foods      usecase.FindFoodById
}

func NewExportRecipeController(book usecase.RecipeBook, foods usecase.FindFoodById) *ExportRecipeController {
	return &ExportRecipeController{
		RecipeBook: book,
		Foods:      foods,
	}
}

func (c *ExportRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipe, ok := c.RecipeBook.GetRecipeById(r.Req.PathValue("recipeId"))
	if !ok {
		return helpers.CreateErrorResponse("recipe not found", http.StatusNotFound)
	}

	file, err := export.RecipeReport(*recipe, c.Foods.GetFoodById)
	if err != nil {
		log.Printf("error building recipe report: %v", err)
		return helpers.CreateErrorResponse("error building recipe report", http.StatusInternalServerError)
	}

	data, err := export.ToBytes(file)
	if err != nil {
		log.Printf("error writing recipe report: %v", err)
		return helpers.CreateErrorResponse("error building recipe report", http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(data, export.ContentType, "recipe-"+recipe.Id+".xlsx")
}
