package entity

import "time"

// Supplier representa un proveedor externo asociado a artículos de stock.
type Supplier struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
