package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CourierRepository define el puerto de persistencia para Courier.
type CourierRepository interface {
	Create(courier *entity.Courier) error
	GetByID(id string) (*entity.Courier, error)
	List(limit int) ([]*entity.Courier, error)
	// ListActive devuelve solo transportadoras con is_active = true
	// (scan con filtro en DynamoDB).
	ListActive() ([]*entity.Courier, error)
	Update(courier *entity.Courier) error
	Delete(id string) error
}
