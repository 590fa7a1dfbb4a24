package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre DynamoDB.
type OrderRepo struct {
	client *dynamodb.Client
	table  string
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(client *dynamodb.Client, table string) *OrderRepo {
	return &OrderRepo{client: client, table: table}
}

func (r *OrderRepo) Create(order *entity.Order) error {
	if err := putItem(r.client, r.table, "id", order); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	found, err := getItem(r.client, r.table, "id", id, &o)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) List(limit int) ([]*entity.Order, error) {
	var list []*entity.Order
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

func (r *OrderRepo) Update(order *entity.Order) error {
	if err := replaceItem(r.client, r.table, "id", order); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (r *OrderRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
