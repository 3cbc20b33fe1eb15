package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas resuelven el nombre del rol con un join a roles en una sola
// ida a la base, nunca con una segunda consulta user→role_id→role.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	// UpdateRole cambia el rol de un usuario (gestión de roles por administrador).
	UpdateRole(userID, roleID string) error
}

// RoleRepository define el puerto para el catálogo de roles.
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
