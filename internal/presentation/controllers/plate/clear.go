package plate

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type ClearPlateController struct {
	Plate usecase.Plate
}

func NewClearPlateController(plate usecase.Plate) *ClearPlateController {
	return &ClearPlateController{
		Plate: plate,
	}
}

func (c *ClearPlateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	c.Plate.Clear()

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
