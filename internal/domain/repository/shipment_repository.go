package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	List(limit int) ([]*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	Delete(id string) error
}
