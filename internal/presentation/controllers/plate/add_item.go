package plate

import (
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type AddPlateItemController struct {
	Plate    usecase.Plate
	Foods    usecase.FindFoodById
	Validate *validator.Validate
}

func NewAddPlateItemController(plate usecase.Plate, foods usecase.FindFoodById) *AddPlateItemController {
	return &AddPlateItemController{
		Plate:    plate,
		Foods:    foods,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type AddPlateItemBody struct {
	FoodId          string  `json:"foodId" validate:"required"`
	QuantityInGrams float64 `json:"quantityInGrams" validate:"required,gt=0"`
}

func (c *AddPlateItemController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body AddPlateItemBody
	if resp := helpers.DecodeBody(r, c.Validate, &body); resp != nil {
		return resp
	}

	food, ok := c.Foods.GetFoodById(body.FoodId)
	if !ok {
		return helpers.CreateErrorResponse("food not found", http.StatusNotFound)
	}

	if _, err := c.Plate.Add(*food, body.QuantityInGrams); err != nil {
		return helpers.DomainErrorResponse(c.Validate, err)
	}

	return helpers.CreateResponse(helpers.NewPlateView(c.Plate), http.StatusOK)
}
