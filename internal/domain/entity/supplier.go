package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID            string    `json:"id" dynamodbav:"id"`
	Name          string    `json:"name" dynamodbav:"name"`
	ContactPerson string    `json:"contact_person" dynamodbav:"contact_person"`
	Email         string    `json:"email" dynamodbav:"email"`
	Phone         string    `json:"phone" dynamodbav:"phone"`
	Address       string    `json:"address" dynamodbav:"address"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
