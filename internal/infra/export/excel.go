package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/Spok95/studio-ops/internal/domain/view"
)

// InventoryWorkbook рендерит сгруппированное представление в xlsx:
// одна строка на предмет, группы идут подряд в порядке категорий.
func InventoryWorkbook(v view.View) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"category",
		"name",
		"brand",
		"model",
		"serial_number",
		"purchase_date",
		"price",
		"status",
		"notes",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, err
	}

	row := 2
	for _, g := range v.Groups {
		for _, it := range g.Items {
			excelRow := []interface{}{
				g.Category,
				it.Name,
				it.Brand,
				it.Model,
				it.SerialNumber,
				it.PurchaseDate,
				it.Price,
				string(it.Status),
				it.Notes,
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
				_ = f.Close()
				return nil, err
			}
			row++
		}
	}

	return f, nil
}
