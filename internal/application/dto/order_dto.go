package dto

import "time"

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// DecideOrderRequest entrada para decidir un pedido (solo administrador).
type DecideOrderRequest struct {
	Status string `json:"status"` // accepted | refused
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ItemID    string     `json:"item_id"`
	Quantity  int        `json:"quantity"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	DecidedBy string     `json:"decided_by,omitempty"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
