package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículos de stock. Una sola tabla stock_items cubre
// medicamentos y material médico.
const (
	CategoryMedicament = "medicament"
	CategoryMateriel   = "materiel"
)

// StockItem representa un registro de inventario con cantidad disponible.
// Quantity nunca debe quedar negativa; toda mutación pasa por el motor
// transaccional (decisiones de pedidos o ajustes de administrador).
type StockItem struct {
	ID          string
	Name        string
	Description string
	Category    string // medicament, materiel
	Quantity    int    // cantidad disponible, >= 0
	Price       decimal.Decimal
	SupplierID  *string // proveedor vinculado (opcional)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCategory valida que s sea una categoría conocida.
func IsCategory(s string) bool {
	return s == CategoryMedicament || s == CategoryMateriel
}
