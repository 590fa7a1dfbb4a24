package dto

import "github.com/shopspring/decimal"

// CreateCourierRequest entrada para registrar una transportadora.
type CreateCourierRequest struct {
	Name         string          `json:"name" validate:"required"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Pricing      decimal.Decimal `json:"pricing"`
	Rating       float64         `json:"rating"`
	IsActive     *bool           `json:"is_active"` // nil = true
	ServiceAreas []string        `json:"service_areas"`
}

// UpdateCourierRequest entrada para actualizar una transportadora.
type UpdateCourierRequest struct {
	Name         *string          `json:"name"`
	Phone        *string          `json:"phone"`
	Email        *string          `json:"email"`
	Pricing      *decimal.Decimal `json:"pricing"`
	Rating       *float64         `json:"rating"`
	IsActive     *bool            `json:"is_active"`
	ServiceAreas []string         `json:"service_areas"`
}
