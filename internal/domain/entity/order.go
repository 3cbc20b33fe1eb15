package entity

import "time"

// Estados del ciclo de vida de un pedido. Solo un administrador muta el estado;
// los pedidos nunca se eliminan físicamente.
const (
	OrderStatusPending  = "pending"
	OrderStatusAccepted = "accepted"
	OrderStatusRefused  = "refused"
)

// Order representa una solicitud de retiro de una cantidad de un artículo de stock,
// sujeta a aprobación de un administrador.
type Order struct {
	ID        string
	UserID    string
	ItemID    string
	Quantity  int // entero positivo
	Status    string
	CreatedAt time.Time
	DecidedAt *time.Time // momento de la decisión accept/refuse
	DecidedBy string     // UserID del administrador que decidió
}

// IsDecisionStatus valida que s sea un estado destino de decisión.
func IsDecisionStatus(s string) bool {
	return s == OrderStatusAccepted || s == OrderStatusRefused
}

// IsOrderStatus valida que s sea un estado conocido (para filtros de listado).
func IsOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusAccepted || s == OrderStatusRefused
}
