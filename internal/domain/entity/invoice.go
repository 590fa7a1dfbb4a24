package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft  = "Draft"
	InvoiceStatusIssued = "Issued"
	InvoiceStatusPaid   = "Paid"
	InvoiceStatusVoid   = "Void"
)

// ValidInvoiceStatus verifica pertenencia al enum de estados de factura.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// InvoiceItem es una línea de factura.
type InvoiceItem struct {
	ProductID string          `json:"product_id" dynamodbav:"product_id"`
	ItemName  string          `json:"item_name" dynamodbav:"item_name"`
	Quantity  int             `json:"quantity" dynamodbav:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" dynamodbav:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate" dynamodbav:"tax_rate"` // porcentaje, ej. 19
}

// Subtotal devuelve cantidad * precio unitario sin impuesto.
func (it InvoiceItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Tax devuelve el impuesto de la línea.
func (it InvoiceItem) Tax() decimal.Decimal {
	return it.Subtotal().Mul(it.TaxRate).Div(decimal.NewFromInt(100))
}

// Invoice representa la cabecera de una factura de venta.
type Invoice struct {
	ID            string          `json:"id" dynamodbav:"id"`
	InvoiceNumber string          `json:"invoice_number" dynamodbav:"invoice_number"`
	CustomerID    string          `json:"customer_id" dynamodbav:"customer_id"` // referencia débil a Customer
	CustomerName  string          `json:"customer_name" dynamodbav:"customer_name"`
	Items         []InvoiceItem   `json:"items" dynamodbav:"items"`
	SubTotal      decimal.Decimal `json:"sub_total" dynamodbav:"sub_total"`
	TaxTotal      decimal.Decimal `json:"tax_total" dynamodbav:"tax_total"`
	GrandTotal    decimal.Decimal `json:"grand_total" dynamodbav:"grand_total"`
	Status        string          `json:"status" dynamodbav:"status"`
	DueDate       string          `json:"due_date" dynamodbav:"due_date"`
	IssuedAt      time.Time       `json:"issued_at" dynamodbav:"issued_at"`
	CreatedAt     time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}
