package dto

// CreateStockItemRequest entrada para crear un ítem de stock.
// El producto referenciado debe existir.
type CreateStockItemRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Location    string `json:"location"`
	Supplier    string `json:"supplier"`
	BatchNumber string `json:"batch_number"`
}

// UpdateStockItemRequest entrada para actualizar un ítem de stock.
// Quantity negativa se rechaza antes de persistir.
type UpdateStockItemRequest struct {
	ItemName    *string `json:"item_name"`
	Quantity    *int    `json:"quantity"`
	Location    *string `json:"location"`
	Supplier    *string `json:"supplier"`
	BatchNumber *string `json:"batch_number"`
}
