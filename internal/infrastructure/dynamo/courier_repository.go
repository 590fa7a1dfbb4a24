package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CourierRepository = (*CourierRepo)(nil)

// CourierRepo implementación de CourierRepository sobre DynamoDB.
type CourierRepo struct {
	client *dynamodb.Client
	table  string
}

// NewCourierRepository construye el adaptador.
func NewCourierRepository(client *dynamodb.Client, table string) *CourierRepo {
	return &CourierRepo{client: client, table: table}
}

// Create persiste una transportadora nueva.
func (r *CourierRepo) Create(courier *entity.Courier) error {
	if err := putItem(r.client, r.table, "id", courier); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert courier: %w", err)
	}
	return nil
}

// GetByID obtiene una transportadora por ID (nil si no existe).
func (r *CourierRepo) GetByID(id string) (*entity.Courier, error) {
	var c entity.Courier
	found, err := getItem(r.client, r.table, "id", id, &c)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// List lista transportadoras (scan con límite).
func (r *CourierRepo) List(limit int) ([]*entity.Courier, error) {
	var list []*entity.Courier
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	return list, nil
}

// ListActive lista solo transportadoras activas (scan con filtro is_active).
func (r *CourierRepo) ListActive() ([]*entity.Courier, error) {
	filter := expression.Name("is_active").Equal(expression.Value(true))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("build filter expression: %w", err)
	}

	res, err := r.client.Scan(context.Background(), &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("scan active couriers: %w", err)
	}

	var list []*entity.Courier
	if err := unmarshalItems(res.Items, &list); err != nil {
		return nil, fmt.Errorf("unmarshal couriers: %w", err)
	}
	return list, nil
}

// Update sobreescribe una transportadora existente.
func (r *CourierRepo) Update(courier *entity.Courier) error {
	if err := replaceItem(r.client, r.table, "id", courier); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update courier: %w", err)
	}
	return nil
}

// Delete elimina una transportadora por ID.
func (r *CourierRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}
	return nil
}
