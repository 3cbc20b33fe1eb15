package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los pedidos nunca se eliminan: solo alta, consulta y cambio de estado.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetByIDForUpdate bloquea la fila del pedido dentro de una transacción (SELECT FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.Order, error)
	// List filtra por estado exacto (status vacío = todos), orden por fecha de creación descendente.
	List(status string, limit, offset int) ([]*entity.Order, error)
	ListByUser(userID, status string, limit, offset int) ([]*entity.Order, error)
	// UpdateStatus persiste status, decided_at y decided_by.
	UpdateStatus(order *entity.Order) error
}
