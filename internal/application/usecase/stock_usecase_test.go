package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	items map[string]*entity.StockItem
}

func newMemStockRepo(items ...*entity.StockItem) *memStockRepo {
	r := &memStockRepo{items: make(map[string]*entity.StockItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *memStockRepo) Create(item *entity.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memStockRepo) List(limit int) ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.ProductID == productID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memStockRepo) Update(item *entity.StockItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memStockRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(product *entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *memProductRepo) List(limit int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(product *entity.Product) error      { return nil }
func (r *memProductRepo) Delete(id string) error                    { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_Exitoso(t *testing.T) {
	repo := newMemStockRepo()
	uc := NewStockUseCase(repo, newMemProductRepo(&entity.Product{ID: "prod-1", Name: "Taladro"}))

	out, err := uc.Create(dto.CreateStockItemRequest{
		ProductID: "prod-1",
		ItemName:  "Taladro industrial",
		Quantity:  25,
		Location:  "Bodega A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 25, out.Quantity)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
}

// El producto referenciado debe existir antes de crear stock.
func TestStockCreate_ProductoInexistente(t *testing.T) {
	uc := NewStockUseCase(newMemStockRepo(), newMemProductRepo())

	_, err := uc.Create(dto.CreateStockItemRequest{
		ProductID: "no-existe",
		ItemName:  "Taladro industrial",
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockCreate_CantidadNegativa(t *testing.T) {
	uc := NewStockUseCase(newMemStockRepo(), newMemProductRepo(&entity.Product{ID: "prod-1"}))

	_, err := uc.Create(dto.CreateStockItemRequest{
		ProductID: "prod-1",
		ItemName:  "Taladro industrial",
		Quantity:  -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cantidad cero es válida: un ítem puede registrarse agotado.
func TestStockCreate_CantidadCero(t *testing.T) {
	uc := NewStockUseCase(newMemStockRepo(), newMemProductRepo(&entity.Product{ID: "prod-1"}))

	out, err := uc.Create(dto.CreateStockItemRequest{
		ProductID: "prod-1",
		ItemName:  "Taladro industrial",
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: solo los campos enviados mutan, quantity nunca negativa
// ──────────────────────────────────────────────────────────────────────────────

func TestStockUpdate_Parcial(t *testing.T) {
	repo := newMemStockRepo(&entity.StockItem{
		ID: "stock-1", ProductID: "prod-1", ItemName: "Taladro industrial",
		Quantity: 10, Location: "Bodega A",
	})
	uc := NewStockUseCase(repo, newMemProductRepo())

	newQty := 7
	out, err := uc.Update("stock-1", dto.UpdateStockItemRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Quantity)
	assert.Equal(t, "Bodega A", out.Location, "campos no enviados no mutan")
	assert.Equal(t, "Taladro industrial", out.ItemName)
}

func TestStockUpdate_CantidadNegativaRechazada(t *testing.T) {
	repo := newMemStockRepo(&entity.StockItem{ID: "stock-1", Quantity: 10})
	uc := NewStockUseCase(repo, newMemProductRepo())

	neg := -5
	_, err := uc.Update("stock-1", dto.UpdateStockItemRequest{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	it, _ := repo.GetByID("stock-1")
	assert.Equal(t, 10, it.Quantity, "el rechazo no debe tocar el ítem")
}

func TestStockUpdate_NoEncontrado(t *testing.T) {
	uc := NewStockUseCase(newMemStockRepo(), newMemProductRepo())

	out, err := uc.Update("no-existe", dto.UpdateStockItemRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestStockListByProduct(t *testing.T) {
	repo := newMemStockRepo(
		&entity.StockItem{ID: "s1", ProductID: "prod-1"},
		&entity.StockItem{ID: "s2", ProductID: "prod-1"},
		&entity.StockItem{ID: "s3", ProductID: "prod-2"},
	)
	uc := NewStockUseCase(repo, newMemProductRepo())

	out, err := uc.ListByProduct("prod-1")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = uc.ListByProduct("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// normalizeLimit
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 50, normalizeLimit(0), "sin límite usa el defecto")
	assert.Equal(t, 50, normalizeLimit(-3))
	assert.Equal(t, 80, normalizeLimit(80))
	assert.Equal(t, 200, normalizeLimit(5000), "se acota al máximo")
}
