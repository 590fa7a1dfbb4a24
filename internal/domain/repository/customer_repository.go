package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
