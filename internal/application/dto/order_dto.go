package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea de una orden de venta.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden de venta.
// El total se recalcula siempre en el servidor a partir de las líneas.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id" validate:"required"`
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1"`
	OrderDate    string             `json:"order_date"` // YYYY-MM-DD, vacío = hoy
}

// UpdateOrderRequest entrada para actualizar una orden (estado y/o líneas).
type UpdateOrderRequest struct {
	Status *string            `json:"status"`
	Items  []OrderItemRequest `json:"items"`
}
