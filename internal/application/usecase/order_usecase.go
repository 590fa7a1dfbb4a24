package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para órdenes de venta.
// El total siempre se recalcula en el servidor a partir de las líneas.
type OrderUseCase struct {
	repo         repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, customerRepo repository.CustomerRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea una orden de venta en estado Pending.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*entity.Order, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customerName := in.CustomerName
	if customerName == "" {
		customerName = customer.Name
	}
	items, total, err := buildOrderItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	orderDate := now
	if in.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", in.OrderDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		orderDate = parsed
	}
	order := &entity.Order{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		CustomerName: customerName,
		Items:        items,
		Status:       entity.OrderStatusPending,
		Total:        total,
		OrderDate:    orderDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*entity.Order, error) {
	return uc.repo.GetByID(id)
}

// List lista órdenes.
func (uc *OrderUseCase) List(limit int) ([]*entity.Order, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// Update actualiza estado y/o líneas de una orden; recalcula el total si
// cambian las líneas.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if len(in.Items) > 0 {
		items, total, err := buildOrderItems(in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildOrderItems(in []dto.OrderItemRequest) ([]entity.OrderItem, decimal.Decimal, error) {
	items := make([]entity.OrderItem, 0, len(in))
	total := decimal.Zero
	for _, it := range in {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return items, total, nil
}
