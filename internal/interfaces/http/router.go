package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/orders"
	"github.com/jhoicas/Farmacia-api/internal/application/reports"
	"github.com/jhoicas/Farmacia-api/internal/application/stock"
	"github.com/jhoicas/Farmacia-api/internal/application/suppliers"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	OrderUC    *orders.OrderUseCase
	StockUC    *stock.StockUseCase
	SupplierUC *suppliers.SupplierUseCase
	ReportUC   *reports.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Reglas de acceso: cualquier usuario autenticado consulta el stock y gestiona
// sus propios pedidos; todo lo que muta inventario, proveedores, roles o decide
// pedidos exige rol administrateur, verificado en el servidor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	admin := RequireRole(entity.RoleAdministrateur)

	// Auth (registro y login públicos; el resto con token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Get("/role", AuthMiddleware(deps.JWTSecret), authHandler.Role)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido; decisión solo administrador)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReportUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)
	ordersGroup.Post("/:id/decision", admin, orderHandler.Decide)

	// Stock (lectura para todos; escritura solo administrador)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/export", stockHandler.Export)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Get("/:id/quantity", stockHandler.GetQuantity)
	stockGroup.Get("/:id/movements", stockHandler.Movements)
	stockGroup.Post("/", admin, stockHandler.Create)
	stockGroup.Put("/:id", admin, stockHandler.Update)
	stockGroup.Delete("/:id", admin, stockHandler.Delete)
	stockGroup.Put("/:id/quantity", admin, stockHandler.SetQuantity)

	// Suppliers (solo administrador)
	suppliersGroup := protected.Group("/suppliers", admin)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliersGroup.Post("/", supplierHandler.Create)
	suppliersGroup.Get("/", supplierHandler.List)
	suppliersGroup.Get("/:id", supplierHandler.GetByID)
	suppliersGroup.Put("/:id", supplierHandler.Update)
	suppliersGroup.Delete("/:id", supplierHandler.Delete)

	// Users (solo administrador)
	usersGroup := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.AuthUC)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Put("/:id/role", userHandler.UpdateRole)
}
