package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/anuntech/nutrisnap-backend/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var reportHeader = []interface{}{"Food", "Grams", "Calories (kcal)", "Protein (g)", "Carbs (g)", "Fat (g)"}

type ReportRow struct {
	Name      string
	Grams     float64
	Nutrients models.NutrientTotals
}

// NutritionReport writes one row per portion followed by a Total row.
// Calories are rounded to whole numbers and macros to one decimal.
func NutritionReport(sheet string, rows []ReportRow, totals models.NutrientTotals, totalGrams float64) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row.Name, row.Grams, row.Nutrients); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeRow(f, sheet, len(rows)+2, "Total", totalGrams, totals); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func PlateReport(lines []models.PlateLine, totals models.NutrientTotals) (*excelize.File, error) {
	var rows []ReportRow
	totalGrams := 0.0
	for _, line := range lines {
		if line.Food == nil {
			continue
		}
		rows = append(rows, ReportRow{
			Name:      line.Food.Name,
			Grams:     line.Item.QuantityInGrams,
			Nutrients: line.Nutrients,
		})
		totalGrams += line.Item.QuantityInGrams
	}
	return NutritionReport("Plate", rows, totals, totalGrams)
}

func RecipeReport(recipe models.Recipe, findFood func(id string) (*models.FoodItem, bool)) (*excelize.File, error) {
	var rows []ReportRow
	for _, item := range recipe.Items {
		food, ok := findFood(item.FoodId)
		if !ok {
			continue
		}
		rows = append(rows, ReportRow{
			Name:      food.Name,
			Grams:     item.QuantityInGrams,
			Nutrients: food.NutritionPer100g.Scale(item.QuantityInGrams),
		})
	}
	totals := recipe.CalculateTotals(findFood)
	return NutritionReport("Recipe", rows, totals.NutrientTotals, totals.TotalGrams)
}

func ToBytes(f *excelize.File) ([]byte, error) {
	defer f.Close()

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("serialize xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNumber int, name string, grams float64, n models.NutrientTotals) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}

	values := []interface{}{
		name,
		round(grams, 1),
		round(n.Calories, 0),
		round(n.Protein, 1),
		round(n.Carbs, 1),
		round(n.Fat, 1),
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNumber, err)
	}
	return nil
}

func round(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(value*p) / p
}
