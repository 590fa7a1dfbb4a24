package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusFulfilled = "Fulfilled"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatus verifica pertenencia al enum de estados de orden.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem es una línea de la orden de venta.
type OrderItem struct {
	ProductID string          `json:"product_id" dynamodbav:"product_id"`
	ItemName  string          `json:"item_name" dynamodbav:"item_name"`
	Quantity  int             `json:"quantity" dynamodbav:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" dynamodbav:"unit_price"`
}

// Order representa una orden de venta de un cliente.
type Order struct {
	ID           string          `json:"id" dynamodbav:"id"`
	CustomerID   string          `json:"customer_id" dynamodbav:"customer_id"` // referencia débil a Customer
	CustomerName string          `json:"customer_name" dynamodbav:"customer_name"`
	Items        []OrderItem     `json:"items" dynamodbav:"items"`
	Status       string          `json:"status" dynamodbav:"status"`
	Total        decimal.Decimal `json:"total" dynamodbav:"total"`
	OrderDate    time.Time       `json:"order_date" dynamodbav:"order_date"`
	CreatedAt    time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}
