package dto

// ShipmentItemRequest línea de contenido de un envío.
type ShipmentItemRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// CreateShipmentRequest entrada para crear un envío manual
// (fuera del workflow de despacho).
type CreateShipmentRequest struct {
	OrderID           string                `json:"order_id"`
	CourierID         string                `json:"courier_id" validate:"required"`
	CustomerName      string                `json:"customer_name" validate:"required"`
	CustomerAddress   string                `json:"customer_address" validate:"required"`
	CustomerPhone     string                `json:"customer_phone"`
	EstimatedDelivery string                `json:"estimated_delivery"` // YYYY-MM-DD
	Items             []ShipmentItemRequest `json:"items"`
}

// UpdateShipmentStatusRequest entrada para PUT /api/shipments/:id/status.
// DeliveryDate/PickupDate vacíos se autocompletan con la fecha del día
// cuando el estado lo amerita.
type UpdateShipmentStatusRequest struct {
	Status       string `json:"status" validate:"required"`
	PickupDate   string `json:"pickup_date"`
	DeliveryDate string `json:"delivery_date"`
}
