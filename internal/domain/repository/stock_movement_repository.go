package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// StockMovementRepository define el puerto para el registro de auditoría de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByOrder(orderID string) ([]*entity.StockMovement, error)
}
