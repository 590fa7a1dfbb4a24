package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura.
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id"`
	ItemName  string          `json:"item_name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// CreateInvoiceRequest entrada para crear una factura.
// Los totales se recalculan siempre en el servidor.
type CreateInvoiceRequest struct {
	CustomerID   string               `json:"customer_id" validate:"required"`
	CustomerName string               `json:"customer_name"`
	Items        []InvoiceItemRequest `json:"items" validate:"required,min=1"`
	DueDate      string               `json:"due_date"` // YYYY-MM-DD
}

// UpdateInvoiceRequest entrada para actualizar una factura.
type UpdateInvoiceRequest struct {
	Status  *string              `json:"status"`
	DueDate *string              `json:"due_date"`
	Items   []InvoiceItemRequest `json:"items"`
}
