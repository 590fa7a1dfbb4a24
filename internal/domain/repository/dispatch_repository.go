package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// DispatchRepository define el puerto de persistencia para DispatchRecord.
// Sin Delete: el historial de despachos es append-only.
type DispatchRepository interface {
	Create(record *entity.DispatchRecord) error
	GetByID(dispatchID string) (*entity.DispatchRecord, error)
	List(limit int) ([]*entity.DispatchRecord, error)
	// Update solo persiste los campos mutables (status, notes).
	Update(record *entity.DispatchRecord) error
}
