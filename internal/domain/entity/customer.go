package entity

import "time"

// Customer representa un cliente (facturación y despachos).
type Customer struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Email     string    `json:"email" dynamodbav:"email"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	Address   string    `json:"address" dynamodbav:"address"`
	TaxID     string    `json:"tax_id" dynamodbav:"tax_id"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
