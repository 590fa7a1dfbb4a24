package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderStatusDraft     = "Draft"
	PurchaseOrderStatusSent      = "Sent"
	PurchaseOrderStatusReceived  = "Received"
	PurchaseOrderStatusCancelled = "Cancelled"
)

// ValidPurchaseOrderStatus verifica pertenencia al enum de estados de orden de compra.
func ValidPurchaseOrderStatus(s string) bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// PurchaseOrderItem es una línea de la orden de compra.
type PurchaseOrderItem struct {
	ProductID string          `json:"product_id" dynamodbav:"product_id"`
	ItemName  string          `json:"item_name" dynamodbav:"item_name"`
	Quantity  int             `json:"quantity" dynamodbav:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost" dynamodbav:"unit_cost"`
}

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID           string              `json:"id" dynamodbav:"id"`
	PONumber     string              `json:"po_number" dynamodbav:"po_number"`
	SupplierID   string              `json:"supplier_id" dynamodbav:"supplier_id"` // referencia débil a Supplier
	SupplierName string              `json:"supplier_name" dynamodbav:"supplier_name"`
	Items        []PurchaseOrderItem `json:"items" dynamodbav:"items"`
	Total        decimal.Decimal     `json:"total" dynamodbav:"total"`
	Status       string              `json:"status" dynamodbav:"status"`
	ExpectedDate string              `json:"expected_date" dynamodbav:"expected_date"`
	CreatedAt    time.Time           `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" dynamodbav:"updated_at"`
}
