package usecase

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DispatchRecordUseCase consulta y actualización de estado del historial de
// despachos. Los registros se crean únicamente desde el workflow de despacho
// y nunca se eliminan; aquí solo mutan status y notes.
type DispatchRecordUseCase struct {
	repo repository.DispatchRepository
}

// NewDispatchRecordUseCase construye el caso de uso.
func NewDispatchRecordUseCase(repo repository.DispatchRepository) *DispatchRecordUseCase {
	return &DispatchRecordUseCase{repo: repo}
}

// GetByID obtiene un registro de despacho.
func (uc *DispatchRecordUseCase) GetByID(dispatchID string) (*entity.DispatchRecord, error) {
	return uc.repo.GetByID(dispatchID)
}

// List lista registros de despacho.
func (uc *DispatchRecordUseCase) List(limit int) ([]*entity.DispatchRecord, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// UpdateStatus actualiza estado (y opcionalmente notas) de un registro.
// Independiente del estado del Shipment asociado: no hay sincronización
// automática entre ambos.
func (uc *DispatchRecordUseCase) UpdateStatus(dispatchID string, in dto.UpdateDispatchStatusRequest) (*entity.DispatchRecord, error) {
	if !entity.ValidDispatchStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	record, err := uc.repo.GetByID(dispatchID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	record.Status = in.Status
	if in.Notes != nil {
		record.Notes = *in.Notes
	}
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}
