package entity

import "time"

// Roles válidos para User. Los nombres vienen del catálogo en la tabla roles.
const (
	RoleAdministrateur = "administrateur"
	RoleEmploye        = "employe"
)

// User representa un usuario del sistema. Role es el nombre resuelto
// desde la tabla roles (join en persistencia, nunca segunda consulta).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RoleID       string
	Role         string // administrateur, employe
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario puede aprobar/rechazar pedidos y editar stock/proveedores.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrateur
}

// Role catálogo de roles (tabla roles).
type Role struct {
	ID   string
	Name string
}
