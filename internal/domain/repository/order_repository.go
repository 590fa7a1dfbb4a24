package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (ventas).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) error
}
