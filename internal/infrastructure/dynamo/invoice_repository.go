package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre DynamoDB.
type InvoiceRepo struct {
	client *dynamodb.Client
	table  string
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(client *dynamodb.Client, table string) *InvoiceRepo {
	return &InvoiceRepo{client: client, table: table}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if err := putItem(r.client, r.table, "id", invoice); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	found, err := getItem(r.client, r.table, "id", id, &inv)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &inv, nil
}

func (r *InvoiceRepo) List(limit int) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return list, nil
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	if err := replaceItem(r.client, r.table, "id", invoice); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
