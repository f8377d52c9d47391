package plate

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type UpdatePlateItemController struct {
	Plate    usecase.Plate
	Validate *validator.Validate
}

func NewUpdatePlateItemController(plate usecase.Plate) *UpdatePlateItemController {
	return &UpdatePlateItemController{
		Plate:    plate,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// QuantityBody accepts any number; zero or less removes the item.
type QuantityBody struct {
	QuantityInGrams *float64 `json:"quantityInGrams" validate:"required"`
}

func (c *UpdatePlateItemController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body QuantityBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	c.Plate.SetQuantity(r.Req.PathValue("itemId"), *body.QuantityInGrams)

	return helpers.CreateResponse(helpers.NewPlateView(c.Plate), http.StatusOK)
}
