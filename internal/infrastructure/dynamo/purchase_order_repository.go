package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre DynamoDB.
type PurchaseOrderRepo struct {
	client *dynamodb.Client
	table  string
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(client *dynamodb.Client, table string) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{client: client, table: table}
}

func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	if err := putItem(r.client, r.table, "id", po); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	found, err := getItem(r.client, r.table, "id", id, &po)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) List(limit int) ([]*entity.PurchaseOrder, error) {
	var list []*entity.PurchaseOrder
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return list, nil
}

func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	if err := replaceItem(r.client, r.table, "id", po); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}
