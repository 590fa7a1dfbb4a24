package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memShipmentRepo struct {
	shipments map[string]*entity.Shipment
}

func newMemShipmentRepo(shipments ...*entity.Shipment) *memShipmentRepo {
	r := &memShipmentRepo{shipments: make(map[string]*entity.Shipment)}
	for _, s := range shipments {
		r.shipments[s.ID] = s
	}
	return r
}

func (r *memShipmentRepo) Create(shipment *entity.Shipment) error {
	r.shipments[shipment.ID] = shipment
	return nil
}

func (r *memShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	s, ok := r.shipments[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memShipmentRepo) List(limit int) ([]*entity.Shipment, error) { return nil, nil }

func (r *memShipmentRepo) Update(shipment *entity.Shipment) error {
	r.shipments[shipment.ID] = shipment
	return nil
}

func (r *memShipmentRepo) Delete(id string) error {
	delete(r.shipments, id)
	return nil
}

type memCourierRepo struct {
	couriers map[string]*entity.Courier
}

func newMemCourierRepo(couriers ...*entity.Courier) *memCourierRepo {
	r := &memCourierRepo{couriers: make(map[string]*entity.Courier)}
	for _, c := range couriers {
		r.couriers[c.ID] = c
	}
	return r
}

func (r *memCourierRepo) Create(courier *entity.Courier) error {
	r.couriers[courier.ID] = courier
	return nil
}

func (r *memCourierRepo) GetByID(id string) (*entity.Courier, error) {
	c, ok := r.couriers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCourierRepo) List(limit int) ([]*entity.Courier, error) {
	out := make([]*entity.Courier, 0, len(r.couriers))
	for _, c := range r.couriers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCourierRepo) ListActive() ([]*entity.Courier, error) {
	var out []*entity.Courier
	for _, c := range r.couriers {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCourierRepo) Update(courier *entity.Courier) error {
	r.couriers[courier.ID] = courier
	return nil
}

func (r *memCourierRepo) Delete(id string) error {
	delete(r.couriers, id)
	return nil
}

// fecha fija para verificar el autocompletado de fechas
var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newShipmentUCForTest(repo *memShipmentRepo, couriers *memCourierRepo) *ShipmentUseCase {
	uc := NewShipmentUseCase(repo, couriers)
	uc.now = func() time.Time { return testNow }
	return uc
}

func pendingShipment() *entity.Shipment {
	return &entity.Shipment{
		ID:             "ship-1",
		CourierID:      "courier-1",
		TrackingNumber: "TRK-1700000000000042",
		CustomerName:   "Ferretería El Tornillo",
		Status:         entity.ShipmentStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestShipmentCreate_Exitoso(t *testing.T) {
	repo := newMemShipmentRepo()
	uc := newShipmentUCForTest(repo, newMemCourierRepo(&entity.Courier{
		ID: "courier-1", Name: "Envíos Andinos", IsActive: true,
	}))

	out, err := uc.Create(dto.CreateShipmentRequest{
		CourierID:       "courier-1",
		CustomerName:    "Ferretería El Tornillo",
		CustomerAddress: "Calle 10 # 5-32, Bogotá",
		Items: []dto.ShipmentItemRequest{
			{ItemName: "Taladro industrial", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusPending, out.Status)
	assert.Equal(t, "Envíos Andinos", out.CourierName)
	assert.NotEmpty(t, out.TrackingNumber)
	require.Len(t, out.Items, 1)

	// Quedó persistido.
	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
}

func TestShipmentCreate_TransportadoraInexistente(t *testing.T) {
	uc := newShipmentUCForTest(newMemShipmentRepo(), newMemCourierRepo())

	_, err := uc.Create(dto.CreateShipmentRequest{
		CourierID:       "no-existe",
		CustomerName:    "Cliente",
		CustomerAddress: "Dirección",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShipmentCreate_ItemInvalido(t *testing.T) {
	uc := newShipmentUCForTest(newMemShipmentRepo(), newMemCourierRepo(&entity.Courier{ID: "courier-1"}))

	_, err := uc.Create(dto.CreateShipmentRequest{
		CourierID:       "courier-1",
		CustomerName:    "Cliente",
		CustomerAddress: "Dirección",
		Items:           []dto.ShipmentItemRequest{{ItemName: "Algo", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus: enum y autocompletado de fechas
// ──────────────────────────────────────────────────────────────────────────────

// Al marcar Delivered sin delivery_date, se autocompleta con la fecha del día.
func TestShipmentUpdateStatus_DeliveredAutocompletaFecha(t *testing.T) {
	repo := newMemShipmentRepo(pendingShipment())
	uc := newShipmentUCForTest(repo, newMemCourierRepo())

	out, err := uc.UpdateStatus("ship-1", dto.UpdateShipmentStatusRequest{
		Status: entity.ShipmentStatusDelivered,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.ShipmentStatusDelivered, out.Status)
	assert.Equal(t, "2025-03-15", out.DeliveryDate,
		"delivery_date vacía debe autocompletarse con la fecha del día")
}

// Una delivery_date explícita se respeta, no se sobreescribe.
func TestShipmentUpdateStatus_FechaExplicitaSeRespeta(t *testing.T) {
	repo := newMemShipmentRepo(pendingShipment())
	uc := newShipmentUCForTest(repo, newMemCourierRepo())

	out, err := uc.UpdateStatus("ship-1", dto.UpdateShipmentStatusRequest{
		Status:       entity.ShipmentStatusDelivered,
		DeliveryDate: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", out.DeliveryDate)
}

func TestShipmentUpdateStatus_PickedUpAutocompletaPickupDate(t *testing.T) {
	repo := newMemShipmentRepo(pendingShipment())
	uc := newShipmentUCForTest(repo, newMemCourierRepo())

	out, err := uc.UpdateStatus("ship-1", dto.UpdateShipmentStatusRequest{
		Status: entity.ShipmentStatusPickedUp,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", out.PickupDate)
	assert.Empty(t, out.DeliveryDate, "pasar a Picked Up no toca delivery_date")
}

// Solo se valida pertenencia al enum; no hay orden impuesto entre estados,
// así que regresar de Delivered a Pending (corrección) es válido.
func TestShipmentUpdateStatus_TransicionesLibres(t *testing.T) {
	s := pendingShipment()
	s.Status = entity.ShipmentStatusDelivered
	s.DeliveryDate = "2025-03-14"
	repo := newMemShipmentRepo(s)
	uc := newShipmentUCForTest(repo, newMemCourierRepo())

	out, err := uc.UpdateStatus("ship-1", dto.UpdateShipmentStatusRequest{
		Status: entity.ShipmentStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusPending, out.Status)
}

func TestShipmentUpdateStatus_EstadoInvalido(t *testing.T) {
	repo := newMemShipmentRepo(pendingShipment())
	uc := newShipmentUCForTest(repo, newMemCourierRepo())

	for _, status := range []string{"", "Lost", "delivered", "EN CAMINO"} {
		_, err := uc.UpdateStatus("ship-1", dto.UpdateShipmentStatusRequest{Status: status})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado %q debe rechazarse", status)
	}
}

func TestShipmentUpdateStatus_NoEncontrado(t *testing.T) {
	uc := newShipmentUCForTest(newMemShipmentRepo(), newMemCourierRepo())

	out, err := uc.UpdateStatus("no-existe", dto.UpdateShipmentStatusRequest{
		Status: entity.ShipmentStatusInTransit,
	})
	require.NoError(t, err)
	assert.Nil(t, out, "envío inexistente devuelve nil sin error")
}
