package dto

import "time"

// RegisterRequest entrada para registro (auth): email, password, nombre.
// El rol no se acepta en el registro: todo usuario nuevo entra como employe
// y solo un administrador puede promoverlo.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RoleResponse salida de GET /api/auth/role (compatibilidad con el cliente original).
type RoleResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UpdateUserRoleRequest entrada para cambiar el rol de un usuario (solo administrador).
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
