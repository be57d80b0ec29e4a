package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	RateUC     *usecase.RateUseCase
	MovementUC *usecase.MovementUseCase
	ComposerUC *shipping.ComposerUseCase
	TransferUC *shipping.TransferUseCase
	Lifecycle  *shipping.LifecycleUseCase
	RemitoUC   *shipping.RemitoUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (catálogo + ingresos de mercadería en Jujuy)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/receipts", productHandler.RegisterReceipt)

	// Orders (órdenes de compra con renglones)
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Shipping (armado y despacho de paquetes)
	shippingGroup := api.Group("/shipping")
	shippingHandler := NewShippingHandler(deps.ComposerUC, deps.TransferUC)
	shippingGroup.Get("/eligible-items", shippingHandler.EligibleItems)
	shippingGroup.Post("/preview", shippingHandler.Preview)
	shippingGroup.Post("/packages", shippingHandler.Commit)

	// Packages (ciclo de vida y remito)
	packages := api.Group("/packages")
	packageHandler := NewPackageHandler(deps.Lifecycle, deps.RemitoUC)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Patch("/:id/status", packageHandler.UpdateStatus)
	packages.Get("/:id/remito", packageHandler.Remito)

	// Rates (tarifas de transporte)
	rates := api.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC)
	rates.Post("/", rateHandler.Create)
	rates.Get("/", rateHandler.List)
	rates.Get("/lookup", rateHandler.Lookup)
	rates.Put("/:id", rateHandler.Update)
	rates.Delete("/:id", rateHandler.Delete)

	// Stock movements (diario, solo lectura)
	stock := api.Group("/stock")
	movementHandler := NewMovementHandler(deps.MovementUC)
	stock.Get("/movements", movementHandler.List)
}
