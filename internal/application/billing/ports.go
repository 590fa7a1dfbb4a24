package billing

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Seller son los datos del emisor que encabezan la factura impresa.
// Vienen de configuración (una sola empresa por despliegue).
type Seller struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, seller Seller, customer *entity.Customer) ([]byte, error)
}
