package entity

import (
	"fmt"
	"math/rand"
	"time"
)

// Estados de un envío con transportadora.
const (
	ShipmentStatusPending        = "Pending"
	ShipmentStatusPickedUp       = "Picked Up"
	ShipmentStatusInTransit      = "In Transit"
	ShipmentStatusOutForDelivery = "Out for Delivery"
	ShipmentStatusDelivered      = "Delivered"
)

// ValidShipmentStatus verifica pertenencia al enum de estados de envío.
// No se impone orden entre transiciones: las correcciones manuales
// (ej. un Delivered mal escaneado) son legítimas.
func ValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusPickedUp, ShipmentStatusInTransit,
		ShipmentStatusOutForDelivery, ShipmentStatusDelivered:
		return true
	}
	return false
}

// NewTrackingNumber deriva un número de guía del reloj. Unicidad por
// construcción (milisegundo + sufijo aleatorio), no criptográfica.
func NewTrackingNumber(now time.Time) string {
	return fmt.Sprintf("TRK-%d%03d", now.UnixMilli(), rand.Intn(1000))
}

// ShipmentItem es una línea de contenido del envío.
type ShipmentItem struct {
	ItemName string `json:"item_name" dynamodbav:"item_name"`
	Quantity int    `json:"quantity" dynamodbav:"quantity"`
}

// Shipment representa una unidad de entrega rastreada por transportadora.
// Se crea antes que el DispatchRecord para que este pueda referenciarlo.
type Shipment struct {
	ID                string         `json:"id" dynamodbav:"id"`
	OrderID           string         `json:"order_id" dynamodbav:"order_id"`
	CourierID         string         `json:"courier_id" dynamodbav:"courier_id"` // referencia débil a Courier
	CourierName       string         `json:"courier_name" dynamodbav:"courier_name"`
	TrackingNumber    string         `json:"tracking_number" dynamodbav:"tracking_number"` // único, derivado del reloj
	CustomerName      string         `json:"customer_name" dynamodbav:"customer_name"`
	CustomerAddress   string         `json:"customer_address" dynamodbav:"customer_address"`
	CustomerPhone     string         `json:"customer_phone" dynamodbav:"customer_phone"`
	Status            string         `json:"status" dynamodbav:"status"`
	EstimatedDelivery string         `json:"estimated_delivery" dynamodbav:"estimated_delivery"`
	PickupDate        string         `json:"pickup_date" dynamodbav:"pickup_date"`
	DeliveryDate      string         `json:"delivery_date" dynamodbav:"delivery_date"`
	Items             []ShipmentItem `json:"items" dynamodbav:"items"`
	CreatedAt         time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}
