package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ReportUseCase genera el comprobante PDF de un pedido y la exportación
// Excel del inventario.
type ReportUseCase struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.StockItemRepository
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	pdf          ReceiptPDFGenerator
	excel        StockReportBuilder
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.StockItemRepository,
	userRepo repository.UserRepository,
	supplierRepo repository.SupplierRepository,
	pdf ReceiptPDFGenerator,
	excel StockReportBuilder,
) *ReportUseCase {
	return &ReportUseCase{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		supplierRepo: supplierRepo,
		pdf:          pdf,
		excel:        excel,
	}
}

// OrderReceiptPDF recupera pedido, artículo y solicitante y genera el comprobante.
// Solo el dueño del pedido o un administrador pueden descargarlo; el pedido debe
// estar ya decidido (accepted o refused).
//
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ReportUseCase) OrderReceiptPDF(ctx context.Context, requesterID, role, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if role != entity.RoleAdministrateur && order.UserID != requesterID {
		return nil, "", domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusPending {
		return nil, "", fmt.Errorf("%w: el pedido sigue pendiente, no hay comprobante que generar", domain.ErrInvalidInput)
	}

	item, err := uc.itemRepo.GetByID(order.ItemID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, "", domain.ErrInvalidReference
	}

	user, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener usuario: %w", err)
	}

	var supplier *entity.Supplier
	if item.SupplierID != nil {
		supplier, _ = uc.supplierRepo.GetByID(*item.SupplierID)
	}

	pdfBytes, err := uc.pdf.GenerateReceiptPDF(ctx, order, item, user, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedido_%s.pdf", order.ID), nil
}

// StockExportExcel exporta el inventario completo a un archivo xlsx.
func (uc *ReportUseCase) StockExportExcel() ([]byte, string, error) {
	// Sin paginación: la exportación es el inventario completo
	items, err := uc.itemRepo.List("", 10000, 0)
	if err != nil {
		return nil, "", fmt.Errorf("export: listar artículos: %w", err)
	}
	suppliers := make(map[string]*entity.Supplier)
	for _, it := range items {
		if it.SupplierID == nil {
			continue
		}
		if _, ok := suppliers[*it.SupplierID]; ok {
			continue
		}
		if s, err := uc.supplierRepo.GetByID(*it.SupplierID); err == nil && s != nil {
			suppliers[*it.SupplierID] = s
		}
	}
	data, err := uc.excel.BuildStockReport(items, suppliers)
	if err != nil {
		return nil, "", fmt.Errorf("export: construir archivo: %w", err)
	}
	filename := fmt.Sprintf("stock_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}
