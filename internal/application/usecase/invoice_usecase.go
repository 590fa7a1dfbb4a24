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

// InvoiceUseCase casos de uso CRUD para facturas de venta.
// Los totales (subtotal, impuestos, total) siempre se recalculan en el
// servidor a partir de las líneas.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea una factura en estado Issued con número consecutivo derivado
// del reloj (FV-<unix>).
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
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
	items, subTotal, taxTotal, err := buildInvoiceItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("FV-%d", now.Unix()),
		CustomerID:    in.CustomerID,
		CustomerName:  customerName,
		Items:         items,
		SubTotal:      subTotal,
		TaxTotal:      taxTotal,
		GrandTotal:    subTotal.Add(taxTotal),
		Status:        entity.InvoiceStatusIssued,
		DueDate:       in.DueDate,
		IssuedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(id)
}

// List lista facturas.
func (uc *InvoiceUseCase) List(limit int) ([]*entity.Invoice, error) {
	return uc.repo.List(normalizeLimit(limit))
}

// Update actualiza estado, vencimiento y/o líneas; recalcula totales si
// cambian las líneas.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		invoice.Status = *in.Status
	}
	if in.DueDate != nil {
		invoice.DueDate = *in.DueDate
	}
	if len(in.Items) > 0 {
		items, subTotal, taxTotal, err := buildInvoiceItems(in.Items)
		if err != nil {
			return nil, err
		}
		invoice.Items = items
		invoice.SubTotal = subTotal
		invoice.TaxTotal = taxTotal
		invoice.GrandTotal = subTotal.Add(taxTotal)
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete elimina una factura por ID.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildInvoiceItems(in []dto.InvoiceItemRequest) ([]entity.InvoiceItem, decimal.Decimal, decimal.Decimal, error) {
	items := make([]entity.InvoiceItem, 0, len(in))
	subTotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, it := range in {
		if it.ItemName == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() || it.TaxRate.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, domain.ErrInvalidInput
		}
		item := entity.InvoiceItem{
			ProductID: it.ProductID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			TaxRate:   it.TaxRate,
		}
		items = append(items, item)
		subTotal = subTotal.Add(item.Subtotal())
		taxTotal = taxTotal.Add(item.Tax())
	}
	return items, subTotal, taxTotal, nil
}
