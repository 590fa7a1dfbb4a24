package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}
