package entity

import "time"

// Estados de un registro de despacho.
const (
	DispatchStatusPending   = "Pending"
	DispatchStatusInTransit = "In Transit"
	DispatchStatusDelivered = "Delivered"
)

// ValidDispatchStatus verifica pertenencia al enum de estados de despacho.
func ValidDispatchStatus(s string) bool {
	switch s {
	case DispatchStatusPending, DispatchStatusInTransit, DispatchStatusDelivered:
		return true
	}
	return false
}

// DispatchRecord es el registro histórico de un despacho de stock contra una
// factura. Append-only: se crea una vez, solo Status y Notes son mutables y
// nunca se elimina en operación normal. Su estado avanza independiente del
// estado del Shipment asociado (seguimiento interno vs. seguimiento del
// paquete con la transportadora).
type DispatchRecord struct {
	DispatchID         string    `json:"dispatch_id" dynamodbav:"dispatch_id"`
	StockID            string    `json:"stock_id" dynamodbav:"stock_id"` // referencia débil a StockItem
	ItemName           string    `json:"item_name" dynamodbav:"item_name"`
	DispatchedQuantity int       `json:"dispatched_quantity" dynamodbav:"dispatched_quantity"`
	InvoiceID          string    `json:"invoice_id" dynamodbav:"invoice_id"`
	CustomerID         string    `json:"customer_id" dynamodbav:"customer_id"`
	CustomerName       string    `json:"customer_name" dynamodbav:"customer_name"`
	ShipmentID         string    `json:"shipment_id,omitempty" dynamodbav:"shipment_id"` // referencia débil a Shipment, puede ser vacío
	Status             string    `json:"status" dynamodbav:"status"`
	DispatchDate       time.Time `json:"dispatch_date" dynamodbav:"dispatch_date"`
	Notes              string    `json:"notes" dynamodbav:"notes"`
	CreatedAt          time.Time `json:"created_at" dynamodbav:"created_at"`
}
