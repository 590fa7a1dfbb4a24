package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dispatch"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockRepo guarda los ítems en un mapa protegido por mutex para que el
// test de concurrencia pueda compartirlo entre goroutines.
type fakeStockRepo struct {
	mu    sync.Mutex
	items map[string]*entity.StockItem
}

func newFakeStockRepo(items ...*entity.StockItem) *fakeStockRepo {
	r := &fakeStockRepo{items: make(map[string]*entity.StockItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeStockRepo) List(limit int) ([]*entity.StockItem, error)                { return nil, nil }
func (r *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockItem, error) { return nil, nil }

func (r *fakeStockRepo) Update(item *entity.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeStockRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// DecrementQuantity replica la semántica condicional: solo decrementa si
// la cantidad alcanza, de forma atómica respecto al mutex.
func (r *fakeStockRepo) DecrementQuantity(id string, qty int) (*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok || it.Quantity < qty {
		return nil, domain.ErrInsufficientStock
	}
	it.Quantity -= qty
	cp := *it
	return &cp, nil
}

type fakeCourierRepo struct {
	couriers map[string]*entity.Courier
}

func newFakeCourierRepo(couriers ...*entity.Courier) *fakeCourierRepo {
	r := &fakeCourierRepo{couriers: make(map[string]*entity.Courier)}
	for _, c := range couriers {
		r.couriers[c.ID] = c
	}
	return r
}

func (r *fakeCourierRepo) Create(courier *entity.Courier) error { return nil }
func (r *fakeCourierRepo) GetByID(id string) (*entity.Courier, error) {
	c, ok := r.couriers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCourierRepo) List(limit int) ([]*entity.Courier, error) { return nil, nil }
func (r *fakeCourierRepo) ListActive() ([]*entity.Courier, error)    { return nil, nil }
func (r *fakeCourierRepo) Update(courier *entity.Courier) error      { return nil }
func (r *fakeCourierRepo) Delete(id string) error                    { return nil }

// fakeTxRunner simula la transacción: decremento condicional sobre el repo
// de stock y captura del shipment/record confirmados. Con err definido,
// falla sin escribir nada.
type fakeTxRunner struct {
	mu        sync.Mutex
	stockRepo *fakeStockRepo
	err       error

	shipments []*entity.Shipment
	records   []*entity.DispatchRecord
}

func (f *fakeTxRunner) Commit(ctx context.Context, shipment *entity.Shipment, record *entity.DispatchRecord, stockID string, quantity int) (*entity.StockItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	updated, err := f.stockRepo.DecrementQuantity(stockID, quantity)
	if err != nil {
		// Igual que el runner real: la condición perdida dentro de la
		// transacción se reporta como conflicto de estado.
		return nil, fmt.Errorf("stock insuficiente al confirmar: %w", domain.ErrConflict)
	}
	f.mu.Lock()
	f.shipments = append(f.shipments, shipment)
	f.records = append(f.records, record)
	f.mu.Unlock()
	return updated, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos base
// ──────────────────────────────────────────────────────────────────────────────

func baseStock() *entity.StockItem {
	return &entity.StockItem{
		ID:       "stock-1",
		ItemName: "Taladro industrial",
		Quantity: 10,
	}
}

func baseCourier() *entity.Courier {
	return &entity.Courier{
		ID:       "courier-1",
		Name:     "Envíos Andinos",
		IsActive: true,
	}
}

func baseRequest() dto.DispatchRequest {
	return dto.DispatchRequest{
		StockID:          "stock-1",
		DispatchQuantity: 4,
		InvoiceID:        "inv-1",
		CustomerID:       "cust-1",
		CustomerName:     "Ferretería El Tornillo",
		CourierID:        "courier-1",
		CustomerPhone:    "3001234567",
		CustomerAddress:  "Calle 10 # 5-32, Bogotá",
	}
}

func buildUseCase(stock *fakeStockRepo, couriers *fakeCourierRepo) (*dispatch.UseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{stockRepo: stock}
	return dispatch.NewUseCase(stock, couriers, tx), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho exitoso
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_Exitoso(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	out, err := uc.Dispatch(context.Background(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	// Stock decrementado: 10 - 4 = 6, y la respuesta refleja el valor nuevo.
	assert.Equal(t, 6, out.StockItem.Quantity)

	// Shipment: pendiente, con tracking TRK- y una sola línea con el ítem.
	require.NotNil(t, out.Shipment)
	assert.Equal(t, entity.ShipmentStatusPending, out.Shipment.Status)
	assert.True(t, strings.HasPrefix(out.Shipment.TrackingNumber, "TRK-"),
		"el tracking debe llevar prefijo TRK-: %s", out.Shipment.TrackingNumber)
	require.Len(t, out.Shipment.Items, 1)
	assert.Equal(t, "Taladro industrial", out.Shipment.Items[0].ItemName)
	assert.Equal(t, 4, out.Shipment.Items[0].Quantity)
	assert.Equal(t, "Envíos Andinos", out.Shipment.CourierName)

	// DispatchRecord: ligado al shipment, pendiente, con prefijo DSP-.
	require.NotNil(t, out.DispatchRecord)
	assert.Equal(t, out.Shipment.ID, out.DispatchRecord.ShipmentID)
	assert.Equal(t, entity.DispatchStatusPending, out.DispatchRecord.Status)
	assert.True(t, strings.HasPrefix(out.DispatchRecord.DispatchID, "DSP-"))
	assert.Equal(t, 4, out.DispatchRecord.DispatchedQuantity)
	assert.Equal(t, "inv-1", out.DispatchRecord.InvoiceID)

	// La transacción corrió exactamente una vez.
	assert.Len(t, tx.shipments, 1)
	assert.Len(t, tx.records, 1)
}

// Despachar exactamente todo el stock disponible es válido y deja cantidad 0.
func TestDispatch_CantidadExacta_DejaStockEnCero(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, _ := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	in := baseRequest()
	in.DispatchQuantity = 10
	out, err := uc.Dispatch(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockItem.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: rechazo antes de cualquier escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_CantidadInvalida(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	for _, qty := range []int{0, -1, -100} {
		in := baseRequest()
		in.DispatchQuantity = qty
		_, err := uc.Dispatch(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	// Ninguna escritura ocurrió y el stock sigue intacto.
	assert.Empty(t, tx.shipments)
	it, _ := stock.GetByID("stock-1")
	assert.Equal(t, 10, it.Quantity)
}

func TestDispatch_CamposRequeridosFaltantes(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	mutations := map[string]func(*dto.DispatchRequest){
		"stock_id":         func(in *dto.DispatchRequest) { in.StockID = "" },
		"invoice_id":       func(in *dto.DispatchRequest) { in.InvoiceID = "" },
		"customer_id":      func(in *dto.DispatchRequest) { in.CustomerID = "" },
		"customer_name":    func(in *dto.DispatchRequest) { in.CustomerName = "" },
		"courier_id":       func(in *dto.DispatchRequest) { in.CourierID = "" },
		"customer_phone":   func(in *dto.DispatchRequest) { in.CustomerPhone = "" },
		"customer_address": func(in *dto.DispatchRequest) { in.CustomerAddress = "" },
	}
	for field, mutate := range mutations {
		in := baseRequest()
		mutate(&in)
		_, err := uc.Dispatch(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "falta %s y debe rechazarse", field)
	}
	assert.Empty(t, tx.shipments)
}

func TestDispatch_StockInsuficiente(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	in := baseRequest()
	in.DispatchQuantity = 11 // hay 10
	_, err := uc.Dispatch(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, tx.shipments)

	it, _ := stock.GetByID("stock-1")
	assert.Equal(t, 10, it.Quantity, "el rechazo no debe tocar el stock")
}

func TestDispatch_StockInexistente(t *testing.T) {
	uc, _ := buildUseCase(newFakeStockRepo(), newFakeCourierRepo(baseCourier()))

	_, err := uc.Dispatch(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDispatch_TransportadoraInexistente(t *testing.T) {
	uc, _ := buildUseCase(newFakeStockRepo(baseStock()), newFakeCourierRepo())

	_, err := uc.Dispatch(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La transportadora pudo desactivarse después de que el usuario la eligió:
// el workflow la reverifica y rechaza el despacho.
func TestDispatch_TransportadoraInactiva(t *testing.T) {
	courier := baseCourier()
	courier.IsActive = false
	uc, tx := buildUseCase(newFakeStockRepo(baseStock()), newFakeCourierRepo(courier))

	_, err := uc.Dispatch(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, tx.shipments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de la transacción
// ──────────────────────────────────────────────────────────────────────────────

// Carrera perdida en el commit: la validación vio stock suficiente pero otra
// petición lo consumió antes de la transacción. El conflicto se propaga tal
// cual, distinto del faltante detectado en la validación.
func TestDispatch_CarreraEnCommit_PropagaConflicto(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	couriers := newFakeCourierRepo(baseCourier())
	tx := &fakeTxRunner{stockRepo: stock, err: fmt.Errorf("stock insuficiente al confirmar: %w", domain.ErrConflict)}
	uc := dispatch.NewUseCase(stock, couriers, tx)

	_, err := uc.Dispatch(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.False(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestDispatch_EscrituraParcial_PropagaPartialWrite(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	couriers := newFakeCourierRepo(baseCourier())
	tx := &fakeTxRunner{stockRepo: stock, err: domain.ErrPartialWrite}
	uc := dispatch.NewUseCase(stock, couriers, tx)

	_, err := uc.Dispatch(context.Background(), baseRequest())
	assert.ErrorIs(t, err, domain.ErrPartialWrite)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sin deduplicación: reintentos idénticos despachan de nuevo
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_SinDeduplicacion(t *testing.T) {
	stock := newFakeStockRepo(baseStock())
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	first, err := uc.Dispatch(context.Background(), baseRequest())
	require.NoError(t, err)
	second, err := uc.Dispatch(context.Background(), baseRequest())
	require.NoError(t, err)

	// Dos despachos independientes: ids distintos y doble decremento.
	assert.NotEqual(t, first.Shipment.ID, second.Shipment.ID)
	assert.NotEqual(t, first.DispatchRecord.DispatchID, second.DispatchRecord.DispatchID)
	assert.Equal(t, 2, second.StockItem.Quantity) // 10 - 4 - 4
	assert.Len(t, tx.records, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: el stock nunca queda negativo
// ──────────────────────────────────────────────────────────────────────────────

// N goroutines compiten por el mismo stock. Con decremento condicional solo
// pueden ganar las que quepan en la cantidad inicial; el resto recibe
// ErrInsufficientStock (validación) o ErrConflict (carrera en el commit) y
// el total despachado nunca excede el disponible.
func TestDispatch_Concurrente_NoSobregiraStock(t *testing.T) {
	const (
		initial    = 10
		qtyEach    = 3
		goroutines = 8
	)
	item := baseStock()
	item.Quantity = initial
	stock := newFakeStockRepo(item)
	uc, tx := buildUseCase(stock, newFakeCourierRepo(baseCourier()))

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := baseRequest()
			in.DispatchQuantity = qtyEach
			_, err := uc.Dispatch(context.Background(), in)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.True(t,
				errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrConflict),
				"error inesperado: %v", err)
			insufficient++
		}
	}

	// Solo caben 3 despachos de 3 unidades en 10.
	assert.Equal(t, 3, ok, "despachos exitosos")
	assert.Equal(t, goroutines-3, insufficient)

	final, _ := stock.GetByID("stock-1")
	assert.Equal(t, initial-3*qtyEach, final.Quantity)
	assert.GreaterOrEqual(t, final.Quantity, 0, "el stock nunca queda negativo")
	assert.Len(t, tx.records, 3)
}
