package plate

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type GetPlateController struct {
	Plate usecase.Plate
}

func NewGetPlateController(plate usecase.Plate) *GetPlateController {
	return &GetPlateController{
		Plate: plate,
	}
}

func (c *GetPlateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(helpers.NewPlateView(c.Plate), http.StatusOK)
}
