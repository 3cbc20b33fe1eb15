package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest entrada para crear un artículo de stock.
type CreateStockItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // medicament | materiel
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *string         `json:"supplier_id"`
}

// UpdateStockItemRequest entrada para actualizar un artículo (la cantidad no;
// esa va por PUT /quantity para que quede registrada como ajuste).
type UpdateStockItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	SupplierID  *string          `json:"supplier_id"`
}

// SetQuantityRequest entrada para sobrescribir la cantidad disponible.
type SetQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// QuantityResponse salida de la cantidad disponible de un artículo.
type QuantityResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// StockItemResponse salida de un artículo de stock.
type StockItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockItemListResponse lista paginada de artículos.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// StockMovementResponse salida de un movimiento de auditoría.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	OrderID   *string   `json:"order_id,omitempty"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// StockMovementListResponse lista paginada de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
