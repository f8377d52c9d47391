package factory

import (
	controllers "github.com/anuntech/nutrisnap-backend/internal/presentation/controllers/plate"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
)

func MakeGetPlateController(a *app.App) *controllers.GetPlateController {
	return controllers.NewGetPlateController(a.Plate)
}

func MakeAddPlateItemController(a *app.App) *controllers.AddPlateItemController {
	return controllers.NewAddPlateItemController(a.Plate, a.Catalog)
}

func MakeUpdatePlateItemController(a *app.App) *controllers.UpdatePlateItemController {
	return controllers.NewUpdatePlateItemController(a.Plate)
}

func MakeDeletePlateItemController(a *app.App) *controllers.DeletePlateItemController {
	return controllers.NewDeletePlateItemController(a.Plate)
}

func MakeClearPlateController(a *app.App) *controllers.ClearPlateController {
	return controllers.NewClearPlateController(a.Plate)
}

func MakeExportPlateController(a *app.App) *controllers.ExportPlateController {
	return controllers.NewExportPlateController(a.Plate)
}
