package entity

import "time"

// StockItem representa una cantidad de producto ubicada en el almacén.
// Invariante: Quantity >= 0. La cantidad solo se muta vía el endpoint de
// stock o el decremento condicional del despacho.
type StockItem struct {
	ID          string    `json:"id" dynamodbav:"id"`
	ProductID   string    `json:"product_id" dynamodbav:"product_id"` // referencia débil a Product
	ItemName    string    `json:"item_name" dynamodbav:"item_name"`
	Quantity    int       `json:"quantity" dynamodbav:"quantity"`
	Location    string    `json:"location" dynamodbav:"location"`
	Supplier    string    `json:"supplier" dynamodbav:"supplier"`
	BatchNumber string    `json:"batch_number" dynamodbav:"batch_number"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
