package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// El stock se maneja por ubicación en StockItem, no aquí.
type Product struct {
	ID          string          `json:"id" dynamodbav:"id"`
	SKU         string          `json:"sku" dynamodbav:"sku"`
	Name        string          `json:"name" dynamodbav:"name"`
	Description string          `json:"description" dynamodbav:"description"`
	Category    string          `json:"category" dynamodbav:"category"`
	Price       decimal.Decimal `json:"price" dynamodbav:"price"`
	Unit        string          `json:"unit" dynamodbav:"unit"`
	SupplierID  string          `json:"supplier_id" dynamodbav:"supplier_id"` // referencia débil a Supplier
	CreatedAt   time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}
