// Package excel construye la exportación xlsx del inventario actual.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreports "github.com/jhoicas/Farmacia-api/internal/application/reports"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// StockReportBuilder implementa reports.StockReportBuilder con excelize.
type StockReportBuilder struct{}

var _ appreports.StockReportBuilder = (*StockReportBuilder)(nil)

// NewStockReportBuilder construye el builder.
func NewStockReportBuilder() *StockReportBuilder { return &StockReportBuilder{} }

// BuildStockReport genera una hoja con una fila por artículo y devuelve los bytes del xlsx.
func (b *StockReportBuilder) BuildStockReport(items []*entity.StockItem, suppliers map[string]*entity.Supplier) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"nombre",
		"descripción",
		"categoría",
		"cantidad",
		"precio",
		"proveedor",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	row := 2
	for _, it := range items {
		supplierName := ""
		if it.SupplierID != nil {
			if s, ok := suppliers[*it.SupplierID]; ok {
				supplierName = s.Name
			}
		}
		excelRow := []interface{}{
			it.ID,
			it.Name,
			it.Description,
			it.Category,
			it.Quantity,
			it.Price.StringFixed(2),
			supplierName,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
