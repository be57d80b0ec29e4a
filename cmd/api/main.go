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
	appshipping "github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/application/usecase"
	infrapdf "github.com/jmfarias/traslados-api/internal/infrastructure/pdf"
	"github.com/jmfarias/traslados-api/internal/infrastructure/postgres"
	httpRouter "github.com/jmfarias/traslados-api/internal/interfaces/http"
	"github.com/jmfarias/traslados-api/pkg/config"
	"github.com/jmfarias/traslados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)
	pkgRepo := postgres.NewPackageRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	orderUC := usecase.NewOrderUseCase(orderRepo, itemRepo, productRepo)
	rateUC := usecase.NewRateUseCase(rateRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo)

	// Motor de envíos: armado, prorrateo, despacho y ciclo de vida
	composerUC := appshipping.NewComposerUseCase(itemRepo, productRepo)
	transferUC := appshipping.NewTransferUseCase(txRunner)
	lifecycleUC := appshipping.NewLifecycleUseCase(txRunner, pkgRepo, itemRepo)

	// PDF: remito que acompaña cada paquete
	remitoGenerator := infrapdf.NewMarotoRemitoGenerator()
	remitoUC := appshipping.NewRemitoUseCase(pkgRepo, itemRepo, remitoGenerator)

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
		Title:    "Traslados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		OrderUC:    orderUC,
		RateUC:     rateUC,
		MovementUC: movementUC,
		ComposerUC: composerUC,
		TransferUC: transferUC,
		Lifecycle:  lifecycleUC,
		RemitoUC:   remitoUC,
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
