package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para StockItem. La cantidad nunca puede
// quedar negativa: las escrituras que violan el invariante se rechazan antes
// de tocar la persistencia.
type StockUseCase struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un ítem de stock. El producto referenciado debe existir
// (único chequeo de integridad entre entidades).
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*entity.StockItem, error) {
	if in.ProductID == "" || in.ItemName == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		ItemName:    in.ItemName,
		Quantity:    in.Quantity,
		Location:    in.Location,
		Supplier:    in.Supplier,
		BatchNumber: in.BatchNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID obtiene un ítem de stock por ID.
func (uc *StockUseCase) GetByID(id string) (*entity.StockItem, error) {
	return uc.repo.GetByID(id)
}

// List lista ítems de stock.
func (uc *StockUseCase) List(limit int) ([]*entity.StockItem, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// ListByProduct lista los ítems de stock de un producto (índice secundario).
func (uc *StockUseCase) ListByProduct(productID string) ([]*entity.StockItem, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByProduct(productID)
}

// Update actualiza un ítem de stock. Cantidad negativa se rechaza antes de
// persistir (invariante quantity >= 0).
func (uc *StockUseCase) Update(id string, in dto.UpdateStockItemRequest) (*entity.StockItem, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.BatchNumber != nil {
		item.BatchNumber = *in.BatchNumber
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina un ítem de stock por ID.
func (uc *StockUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// normalizeLimit acota el límite de listados (defecto 50, máximo 200).
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
