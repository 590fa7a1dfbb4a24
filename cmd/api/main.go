package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Almacen-api/internal/application/billing"
	appdispatch "github.com/jhoicas/Almacen-api/internal/application/dispatch"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/dynamo"
	infrapdf "github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := dynamo.NewClient(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente DynamoDB")
	}
	tables := dynamo.NewTables(cfg.Dynamo.TablePrefix)

	productRepo := dynamo.NewProductRepository(client, tables.Products)
	stockRepo := dynamo.NewStockRepository(client, tables.Stock)
	customerRepo := dynamo.NewCustomerRepository(client, tables.Customers)
	supplierRepo := dynamo.NewSupplierRepository(client, tables.Suppliers)
	orderRepo := dynamo.NewOrderRepository(client, tables.Orders)
	invoiceRepo := dynamo.NewInvoiceRepository(client, tables.Invoices)
	purchaseOrderRepo := dynamo.NewPurchaseOrderRepository(client, tables.PurchaseOrders)
	courierRepo := dynamo.NewCourierRepository(client, tables.Couriers)
	shipmentRepo := dynamo.NewShipmentRepository(client, tables.Shipments)
	dispatchRepo := dynamo.NewDispatchRepository(client, tables.Dispatch)
	txRunner := dynamo.NewTxRunner(client, tables)

	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, customerRepo)
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(purchaseOrderRepo, supplierRepo)
	courierUC := usecase.NewCourierUseCase(courierRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, courierRepo)
	dispatchUC := appdispatch.NewUseCase(stockRepo, courierRepo, txRunner)
	dispatchRecordUC := usecase.NewDispatchRecordUseCase(dispatchRepo)

	// PDF: representación imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator, billing.Seller{
		Name:    cfg.Seller.Name,
		TaxID:   cfg.Seller.TaxID,
		Address: cfg.Seller.Address,
		Phone:   cfg.Seller.Phone,
		Email:   cfg.Seller.Email,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el
	// json generado con swag init)
	httpRouter.MountSwagger(app, "./docs/swagger.json", "Almacén API")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		StockUC:          stockUC,
		CustomerUC:       customerUC,
		SupplierUC:       supplierUC,
		OrderUC:          orderUC,
		InvoiceUC:        invoiceUC,
		InvoicePDFUC:     invoicePDFUC,
		PurchaseOrderUC:  purchaseOrderUC,
		CourierUC:        courierUC,
		ShipmentUC:       shipmentUC,
		DispatchUC:       dispatchUC,
		DispatchRecordUC: dispatchRecordUC,
		JWTSecret:        cfg.JWT.Secret,
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
