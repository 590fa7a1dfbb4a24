package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/billing"
	appdispatch "github.com/jhoicas/Almacen-api/internal/application/dispatch"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	StockUC          *usecase.StockUseCase
	CustomerUC       *usecase.CustomerUseCase
	SupplierUC       *usecase.SupplierUseCase
	OrderUC          *usecase.OrderUseCase
	InvoiceUC        *usecase.InvoiceUseCase
	InvoicePDFUC     *billing.PDFUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	CourierUC        *usecase.CourierUseCase
	ShipmentUC       *usecase.ShipmentUseCase
	DispatchUC       *appdispatch.UseCase
	DispatchRecordUC *usecase.DispatchRecordUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Shipments: creación pública (integraciones externas registran envíos
	// manuales sin token); lectura y mutación protegidas.
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	api.Post("/shipments", shipmentHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/product/:productId", stockHandler.ListByProduct)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Purchase orders (protegido)
	purchaseOrders := protected.Group("/purchase-orders")
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	purchaseOrders.Post("/", purchaseOrderHandler.Create)
	purchaseOrders.Get("/", purchaseOrderHandler.List)
	purchaseOrders.Get("/:id", purchaseOrderHandler.GetByID)
	purchaseOrders.Put("/:id", purchaseOrderHandler.Update)
	purchaseOrders.Delete("/:id", purchaseOrderHandler.Delete)

	// Couriers (protegido); /active antes de /:id para que no lo capture el param
	couriers := protected.Group("/couriers")
	courierHandler := NewCourierHandler(deps.CourierUC)
	couriers.Post("/", courierHandler.Create)
	couriers.Get("/", courierHandler.List)
	couriers.Get("/active", courierHandler.ListActive)
	couriers.Get("/:id", courierHandler.GetByID)
	couriers.Put("/:id", courierHandler.Update)
	couriers.Delete("/:id", courierHandler.Delete)

	// Shipments, resto (protegido)
	shipments := protected.Group("/shipments")
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Put("/:id/status", shipmentHandler.UpdateStatus)
	shipments.Delete("/:id", shipmentHandler.Delete)

	// Dispatch workflow e historial (protegido)
	dispatch := protected.Group("/dispatch")
	dispatchHandler := NewDispatchHandler(deps.DispatchUC, deps.DispatchRecordUC)
	dispatch.Post("/", dispatchHandler.Dispatch)
	dispatch.Get("/", dispatchHandler.List)
	dispatch.Get("/:dispatchId", dispatchHandler.GetByID)
	dispatch.Put("/:dispatchId/status", dispatchHandler.UpdateStatus)
}
