package http

import (
	"github.com/gofiber/fiber/v2"
	appledger "github.com/tu-usuario/negocio-pro/internal/application/ledger"
	"github.com/tu-usuario/negocio-pro/internal/application/manufacturing"
	"github.com/tu-usuario/negocio-pro/internal/application/purchasing"
	"github.com/tu-usuario/negocio-pro/internal/application/sales"
	"github.com/tu-usuario/negocio-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RawMaterialUC    *usecase.RawMaterialUseCase
	CustomerUC       *usecase.CustomerUseCase
	SupplierUC       *usecase.SupplierUseCase
	ExpenseUC        *usecase.ExpenseUseCase
	CreateSale       *sales.CreateSaleUseCase
	RegisterPurchase *purchasing.RegisterPurchaseUseCase
	RegisterProd     *manufacturing.RegisterProductionUseCase
	DailyBook        *appledger.DailyBookUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	materials := api.Group("/raw-materials")
	materialHandler := NewRawMaterialHandler(deps.RawMaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Terceros (inmutables: solo alta y consulta)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Transacciones (solo-inserción)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.RegisterPurchase)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	manufacturingGroup := api.Group("/manufacturing")
	manufacturingHandler := NewManufacturingHandler(deps.RegisterProd)
	manufacturingGroup.Post("/", manufacturingHandler.Create)
	manufacturingGroup.Get("/", manufacturingHandler.List)

	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)

	// Libro diario (solo lectura, reconstruido por consulta)
	dailyBookHandler := NewDailyBookHandler(deps.DailyBook)
	api.Get("/daily-book", dailyBookHandler.Get)
}
