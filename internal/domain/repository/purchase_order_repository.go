package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(limit int) ([]*entity.PurchaseOrder, error)
	Update(po *entity.PurchaseOrder) error
	Delete(id string) error
}
