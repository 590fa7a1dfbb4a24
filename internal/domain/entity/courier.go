package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Courier es un dato de referencia: transportadora disponible para envíos.
// Entrada de solo lectura para la creación de Shipments; el workflow de
// despacho no lo muta.
type Courier struct {
	ID           string          `json:"id" dynamodbav:"id"`
	Name         string          `json:"name" dynamodbav:"name"`
	Phone        string          `json:"phone" dynamodbav:"phone"`
	Email        string          `json:"email" dynamodbav:"email"`
	Pricing      decimal.Decimal `json:"pricing" dynamodbav:"pricing"` // tarifa base por envío
	Rating       float64         `json:"rating" dynamodbav:"rating"`
	IsActive     bool            `json:"is_active" dynamodbav:"is_active"`
	ServiceAreas []string        `json:"service_areas" dynamodbav:"service_areas"`
	CreatedAt    time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}
