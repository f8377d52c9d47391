package plate

import (
	"log"
	"net/http"

	"github.com/anuntech/nutrisnap-backend/internal/domain/usecase"
	"github.com/anuntech/nutrisnap-backend/internal/infra/export"
	"github.com/anuntech/nutrisnap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

type ExportPlateController struct {
	Plate usecase.Plate
}

func NewExportPlateController(plate usecase.Plate) *ExportPlateController {
	return &ExportPlateController{
		Plate: plate,
	}
}

func (c *ExportPlateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	file, err := export.PlateReport(c.Plate.Lines(), c.Plate.Totals())
	if err != nil {
		log.Printf("error building plate report: %v", err)
		return helpers.CreateErrorResponse("error building plate report", http.StatusInternalServerError)
	}

	data, err := export.ToBytes(file)
	if err != nil {
		log.Printf("error writing plate report: %v", err)
		return helpers.CreateErrorResponse("error building plate report", http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(data, export.ContentType, "plate.xlsx")
}
