package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de transacciones.
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	// List filtra por categoría exacta (vacía = todas), orden por nombre.
	List(category string, limit, offset int) ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
	// GetQuantity lee solo la cantidad disponible. ErrNotFound si el artículo no existe.
	GetQuantity(id string) (int, error)
	// UpdateQuantity sobrescribe la cantidad disponible.
	UpdateQuantity(id string, quantity int) error
}
