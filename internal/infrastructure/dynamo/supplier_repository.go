package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre DynamoDB.
type SupplierRepo struct {
	client *dynamodb.Client
	table  string
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(client *dynamodb.Client, table string) *SupplierRepo {
	return &SupplierRepo{client: client, table: table}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if err := putItem(r.client, r.table, "id", supplier); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	found, err := getItem(r.client, r.table, "id", id, &s)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) List(limit int) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	if err := replaceItem(r.client, r.table, "id", supplier); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
