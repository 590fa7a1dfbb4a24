package dto

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	ItemName  string          `json:"item_name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplier_id" validate:"required"`
	SupplierName string                     `json:"supplier_name"`
	Items        []PurchaseOrderItemRequest `json:"items" validate:"required,min=1"`
	ExpectedDate string                     `json:"expected_date"` // YYYY-MM-DD
}

// UpdatePurchaseOrderRequest entrada para actualizar una orden de compra.
type UpdatePurchaseOrderRequest struct {
	Status       *string                    `json:"status"`
	ExpectedDate *string                    `json:"expected_date"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}
