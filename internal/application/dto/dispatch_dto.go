package dto

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// DispatchRequest body para POST /api/dispatch: despachar una cantidad de un
// ítem de stock contra una factura/cliente, con transportadora asignada.
type DispatchRequest struct {
	StockID           string `json:"stock_id" validate:"required"`
	DispatchQuantity  int    `json:"dispatch_quantity" validate:"min=1"`
	InvoiceID         string `json:"invoice_id" validate:"required"`
	CustomerID        string `json:"customer_id" validate:"required"`
	CustomerName      string `json:"customer_name" validate:"required"`
	CourierID         string `json:"courier_id" validate:"required"`
	CustomerPhone     string `json:"customer_phone" validate:"required"`
	CustomerAddress   string `json:"customer_address" validate:"required"`
	EstimatedDelivery string `json:"estimated_delivery"` // opcional, YYYY-MM-DD
	Notes             string `json:"notes"`              // opcional
}

// DispatchResponse resultado del despacho: las tres escrituras confirmadas.
type DispatchResponse struct {
	StockItem      *entity.StockItem      `json:"stock_item"`
	Shipment       *entity.Shipment       `json:"shipment"`
	DispatchRecord *entity.DispatchRecord `json:"dispatch_record"`
}

// UpdateDispatchStatusRequest body para PUT /api/dispatch/:dispatchId/status.
type UpdateDispatchStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}
