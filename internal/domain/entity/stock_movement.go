package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeOut    = "out"    // salida por pedido aceptado
	MovementTypeIn     = "in"     // reposición por pedido rechazado
	MovementTypeAdjust = "adjust" // ajuste directo de administrador
)

// StockMovement es el registro de auditoría de cada cambio de cantidad.
// Para decisiones de pedidos OrderID referencia el pedido que lo originó;
// sustituye a la tabla de historial del flujo original.
type StockMovement struct {
	ID        string
	ItemID    string
	OrderID   *string // nil para ajustes manuales
	Type      string  // out, in, adjust
	Quantity  int     // negativo para out, positivo para in; delta aplicado en adjust
	Reason    string
	CreatedAt time.Time
	CreatedBy string // UserID
}
