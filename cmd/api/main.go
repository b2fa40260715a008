package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appledger "github.com/tu-usuario/negocio-pro/internal/application/ledger"
	"github.com/tu-usuario/negocio-pro/internal/application/manufacturing"
	"github.com/tu-usuario/negocio-pro/internal/application/purchasing"
	"github.com/tu-usuario/negocio-pro/internal/application/sales"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/application/usecase"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/docrepo"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/mongodb"
	httpRouter "github.com/tu-usuario/negocio-pro/internal/interfaces/http"
	"github.com/tu-usuario/negocio-pro/pkg/config"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	store := mongodb.NewStore(client, cfg.Mongo.Database)

	productRepo := docrepo.NewProductRepository(store)
	materialRepo := docrepo.NewRawMaterialRepository(store)
	customerRepo := docrepo.NewCustomerRepository(store)
	supplierRepo := docrepo.NewSupplierRepository(store)
	saleRepo := docrepo.NewSaleRepository(store)
	purchaseRepo := docrepo.NewPurchaseRepository(store)
	manufacturingRepo := docrepo.NewManufacturingRepository(store)
	expenseRepo := docrepo.NewExpenseRepository(store)

	// Espejo de existencias: se calienta una vez al arrancar y desde ahí toda
	// mutación de stock pasa por él.
	stockLedger := stock.NewLedger(productRepo, materialRepo)
	if err := stockLedger.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar espejo de existencias")
	}

	// Contador de facturas: upsert a cero si aún no existe.
	numbering := sales.NewInvoiceNumbering(store)
	if err := numbering.Ensure(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicializar numeración de facturas")
	}

	productUC := usecase.NewProductUseCase(productRepo, stockLedger, log)
	materialUC := usecase.NewRawMaterialUseCase(materialRepo, stockLedger, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, log)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, log)
	createSaleUC := sales.NewCreateSaleUseCase(saleRepo, productRepo, customerRepo, stockLedger, numbering, log)
	registerPurchaseUC := purchasing.NewRegisterPurchaseUseCase(purchaseRepo, supplierRepo, materialRepo, stockLedger, log)
	registerProductionUC := manufacturing.NewRegisterProductionUseCase(manufacturingRepo, productRepo, materialRepo, stockLedger, log)
	dailyBookUC := appledger.NewDailyBookUseCase(saleRepo, expenseRepo, purchaseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NegocioPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RawMaterialUC:    materialUC,
		CustomerUC:       customerUC,
		SupplierUC:       supplierUC,
		ExpenseUC:        expenseUC,
		CreateSale:       createSaleUC,
		RegisterPurchase: registerPurchaseUC,
		RegisterProd:     registerProductionUC,
		DailyBook:        dailyBookUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
