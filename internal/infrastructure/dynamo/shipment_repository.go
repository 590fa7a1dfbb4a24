package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository sobre DynamoDB.
type ShipmentRepo struct {
	client *dynamodb.Client
	table  string
}

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(client *dynamodb.Client, table string) *ShipmentRepo {
	return &ShipmentRepo{client: client, table: table}
}

func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	if err := putItem(r.client, r.table, "id", shipment); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	var s entity.Shipment
	found, err := getItem(r.client, r.table, "id", id, &s)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func (r *ShipmentRepo) List(limit int) ([]*entity.Shipment, error) {
	var list []*entity.Shipment
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return list, nil
}

func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	if err := replaceItem(r.client, r.table, "id", shipment); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}
