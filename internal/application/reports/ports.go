package reports

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el comprobante PDF de un pedido decidido.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, item *entity.StockItem, user *entity.User, supplier *entity.Supplier) ([]byte, error)
}

// StockReportBuilder construye el archivo de exportación del inventario actual.
type StockReportBuilder interface {
	BuildStockReport(items []*entity.StockItem, suppliers map[string]*entity.Supplier) ([]byte, error)
}
