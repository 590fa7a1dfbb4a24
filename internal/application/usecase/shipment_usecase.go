package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ShipmentUseCase casos de uso para Shipment. El estado del envío avanza
// independiente del estado del DispatchRecord asociado: rastrean cosas
// distintas (el paquete con la transportadora vs. el cumplimiento interno).
type ShipmentUseCase struct {
	repo        repository.ShipmentRepository
	courierRepo repository.CourierRepository
	now         func() time.Time
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, courierRepo repository.CourierRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo, courierRepo: courierRepo, now: time.Now}
}

// Create crea un envío manual (fuera del workflow de despacho).
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*entity.Shipment, error) {
	if in.CourierID == "" || in.CustomerName == "" || in.CustomerAddress == "" {
		return nil, domain.ErrInvalidInput
	}
	courier, err := uc.courierRepo.GetByID(in.CourierID)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	items := make([]entity.ShipmentItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ItemName == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.ShipmentItem{ItemName: it.ItemName, Quantity: it.Quantity})
	}
	shipment := &entity.Shipment{
		ID:                uuid.New().String(),
		OrderID:           in.OrderID,
		CourierID:         courier.ID,
		CourierName:       courier.Name,
		TrackingNumber:    entity.NewTrackingNumber(now),
		CustomerName:      in.CustomerName,
		CustomerAddress:   in.CustomerAddress,
		CustomerPhone:     in.CustomerPhone,
		Status:            entity.ShipmentStatusPending,
		EstimatedDelivery: in.EstimatedDelivery,
		Items:             items,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// GetByID obtiene un envío por ID.
func (uc *ShipmentUseCase) GetByID(id string) (*entity.Shipment, error) {
	return uc.repo.GetByID(id)
}

// List lista envíos.
func (uc *ShipmentUseCase) List(limit int) ([]*entity.Shipment, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// UpdateStatus actualiza el estado del envío. Solo valida pertenencia al
// enum, sin orden impuesto entre transiciones. Al pasar a Delivered sin
// delivery_date se autocompleta con la fecha del día; Picked Up hace lo
// propio con pickup_date.
func (uc *ShipmentUseCase) UpdateStatus(id string, in dto.UpdateShipmentStatusRequest) (*entity.Shipment, error) {
	if !entity.ValidShipmentStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	now := uc.now()
	shipment.Status = in.Status
	if in.PickupDate != "" {
		shipment.PickupDate = in.PickupDate
	}
	if in.DeliveryDate != "" {
		shipment.DeliveryDate = in.DeliveryDate
	}
	switch in.Status {
	case entity.ShipmentStatusPickedUp:
		if shipment.PickupDate == "" {
			shipment.PickupDate = now.Format("2006-01-02")
		}
	case entity.ShipmentStatusDelivered:
		if shipment.DeliveryDate == "" {
			shipment.DeliveryDate = now.Format("2006-01-02")
		}
	}
	shipment.UpdatedAt = now
	if err := uc.repo.Update(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// Delete elimina un envío por ID.
func (uc *ShipmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
