package export

import (
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Orders"

// XLSX builds a single-sheet workbook: header row, then one row per order.
func XLSX(orders []entity.Order, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "G1", bold); err != nil {
		return nil, err
	}

	for i, r := range Rows(orders, loc) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{r.Code, r.Customer, r.Phone, r.Total, r.Status, r.Source, r.Created}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetName, "A", "G", 20); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
