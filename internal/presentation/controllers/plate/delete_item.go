package plate

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type DeletePlateItemController struct {
	Plate usecase.Plate
}

func NewDeletePlateItemController(plate usecase.Plate) *DeletePlateItemController {
	return &DeletePlateItemController{
		Plate: plate,
	}
}

func (c *DeletePlateItemController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	c.Plate.Remove(r.Req.PathValue("itemId"))

	return helpers.CreateResponse(helpers.NewPlateView(c.Plate), http.StatusOK)
}
