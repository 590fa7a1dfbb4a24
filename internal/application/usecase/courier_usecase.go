package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CourierUseCase casos de uso CRUD para Courier (dato de referencia).
type CourierUseCase struct {
	repo repository.CourierRepository
}

// NewCourierUseCase construye el caso de uso.
func NewCourierUseCase(repo repository.CourierRepository) *CourierUseCase {
	return &CourierUseCase{repo: repo}
}

// Create registra una transportadora. IsActive por defecto true.
func (uc *CourierUseCase) Create(in dto.CreateCourierRequest) (*entity.Courier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	courier := &entity.Courier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Pricing:      in.Pricing,
		Rating:       in.Rating,
		IsActive:     isActive,
		ServiceAreas: in.ServiceAreas,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(courier); err != nil {
		return nil, err
	}
	return courier, nil
}

// GetByID obtiene una transportadora por ID.
func (uc *CourierUseCase) GetByID(id string) (*entity.Courier, error) {
	return uc.repo.GetByID(id)
}

// List lista todas las transportadoras.
func (uc *CourierUseCase) List(limit int) ([]*entity.Courier, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// ListActive lista solo transportadoras activas (las elegibles al despachar).
func (uc *CourierUseCase) ListActive() ([]*entity.Courier, error) {
	return uc.repo.ListActive()
}

// Update actualiza una transportadora.
func (uc *CourierUseCase) Update(id string, in dto.UpdateCourierRequest) (*entity.Courier, error) {
	courier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, nil
	}
	if in.Name != nil {
		courier.Name = *in.Name
	}
	if in.Phone != nil {
		courier.Phone = *in.Phone
	}
	if in.Email != nil {
		courier.Email = *in.Email
	}
	if in.Pricing != nil {
		courier.Pricing = *in.Pricing
	}
	if in.Rating != nil {
		courier.Rating = *in.Rating
	}
	if in.IsActive != nil {
		courier.IsActive = *in.IsActive
	}
	if in.ServiceAreas != nil {
		courier.ServiceAreas = in.ServiceAreas
	}
	courier.UpdatedAt = time.Now()
	if err := uc.repo.Update(courier); err != nil {
		return nil, err
	}
	return courier, nil
}

// Delete elimina una transportadora por ID.
func (uc *CourierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
