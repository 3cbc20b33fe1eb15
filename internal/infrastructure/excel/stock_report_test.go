package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	infraexcel "github.com/jhoicas/Farmacia-api/internal/infrastructure/excel"
)

func TestBuildStockReport_GeneraFilasPorArticulo(t *testing.T) {
	supplierID := "sup-1"
	items := []*entity.StockItem{
		{
			ID:         "item-1",
			Name:       "Paracetamol 500mg",
			Category:   entity.CategoryMedicament,
			Quantity:   42,
			Price:      decimal.RequireFromString("3.5"),
			SupplierID: &supplierID,
		},
		{
			ID:       "item-2",
			Name:     "Guantes de nitrilo",
			Category: entity.CategoryMateriel,
			Quantity: 500,
			Price:    decimal.RequireFromString("0.10"),
		},
	}
	suppliers := map[string]*entity.Supplier{
		supplierID: {ID: supplierID, Name: "Laboratorios Andinos"},
	}

	data, err := infraexcel.NewStockReportBuilder().BuildStockReport(items, suppliers)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "nombre", header)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", name)

	price, err := f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "3.50", price, "el precio se exporta con dos decimales")

	supplier, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "Laboratorios Andinos", supplier)

	supplierEmpty, err := f.GetCellValue(sheet, "G3")
	require.NoError(t, err)
	assert.Empty(t, supplierEmpty, "artículo sin proveedor exporta la celda vacía")
}

func TestBuildStockReport_SinArticulos_SoloCabecera(t *testing.T) {
	data, err := infraexcel.NewStockReportBuilder().BuildStockReport(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "sin artículos solo queda la fila de cabecera")
}
