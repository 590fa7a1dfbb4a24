package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PurchaseOrderUseCase casos de uso CRUD para órdenes de compra.
type PurchaseOrderUseCase struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository, supplierRepo repository.SupplierRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea una orden de compra en estado Draft.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplierName := in.SupplierName
	if supplierName == "" {
		supplierName = supplier.Name
	}
	items, total, err := buildPurchaseOrderItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		PONumber:     fmt.Sprintf("OC-%d", now.Unix()),
		SupplierID:   in.SupplierID,
		SupplierName: supplierName,
		Items:        items,
		Total:        total,
		Status:       entity.PurchaseOrderStatusDraft,
		ExpectedDate: in.ExpectedDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(po); err != nil {
		return nil, err
	}
	return po, nil
}

// GetByID obtiene una orden de compra por ID.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*entity.PurchaseOrder, error) {
	return uc.repo.GetByID(id)
}

// List lista órdenes de compra.
func (uc *PurchaseOrderUseCase) List(limit int) ([]*entity.PurchaseOrder, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// Update actualiza estado, fecha esperada y/o líneas.
func (uc *PurchaseOrderUseCase) Update(id string, in dto.UpdatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidPurchaseOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		po.Status = *in.Status
	}
	if in.ExpectedDate != nil {
		po.ExpectedDate = *in.ExpectedDate
	}
	if len(in.Items) > 0 {
		items, total, err := buildPurchaseOrderItems(in.Items)
		if err != nil {
			return nil, err
		}
		po.Items = items
		po.Total = total
	}
	po.UpdatedAt = time.Now()
	if err := uc.repo.Update(po); err != nil {
		return nil, err
	}
	return po, nil
}

// Delete elimina una orden de compra por ID.
func (uc *PurchaseOrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildPurchaseOrderItems(in []dto.PurchaseOrderItemRequest) ([]entity.PurchaseOrderItem, decimal.Decimal, error) {
	items := make([]entity.PurchaseOrderItem, 0, len(in))
	total := decimal.Zero
	for _, it := range in {
		if it.ItemName == "" || it.Quantity <= 0 || it.UnitCost.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		items = append(items, entity.PurchaseOrderItem{
			ProductID: it.ProductID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
		})
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return items, total, nil
}
