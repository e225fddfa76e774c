package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/receiving"
	"github.com/jhoicas/Farmacia-api/internal/application/replenishment"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	SupplierUC   *usecase.SupplierUseCase
	MovementUC   *usecase.MovementUseCase
	CartUC       *receiving.CartUseCase
	CommitUC     *receiving.CommitUseCase
	AdvisorUC    *replenishment.AdvisorUseCase
	GeneratorUC  *replenishment.GeneratorUseCase
	OrderQueryUC *replenishment.OrderQueryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido, solo lectura: el CRUD de catálogo vive en otro módulo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Receiving: ingreso de mercancía (admin y farmaceutico)
	recvGroup := protected.Group("/receiving", RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico))
	receivingHandler := NewReceivingHandler(deps.CartUC, deps.CommitUC)
	recvGroup.Post("/preview", receivingHandler.Preview)
	recvGroup.Get("/cart", receivingHandler.GetCart)
	recvGroup.Post("/cart/items", receivingHandler.AddItem)
	recvGroup.Delete("/cart/items/:index", receivingHandler.RemoveItem)
	recvGroup.Get("/lot-expiry", receivingHandler.LotExpiry)
	recvGroup.Post("/commit", receivingHandler.Commit)

	// Replenishment: análisis y órdenes de compra (admin y farmaceutico)
	replGroup := protected.Group("/replenishment", RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico))
	replenishmentHandler := NewReplenishmentHandler(deps.AdvisorUC, deps.GeneratorUC, deps.OrderQueryUC)
	replGroup.Get("/advice", replenishmentHandler.Advise)
	replGroup.Post("/orders", replenishmentHandler.GenerateOrders)
	replGroup.Get("/orders", replenishmentHandler.ListOrders)
	replGroup.Get("/orders/:id", replenishmentHandler.GetOrder)

	// Movements (protegido, historial de ingresos)
	inventory := protected.Group("/inventory")
	movementHandler := NewMovementHandler(deps.MovementUC)
	inventory.Get("/movements", movementHandler.List)
}
