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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre DynamoDB.
type StockRepo struct {
	client *dynamodb.Client
	table  string
}

// NewStockRepository construye el adaptador.
func NewStockRepository(client *dynamodb.Client, table string) *StockRepo {
	return &StockRepo{client: client, table: table}
}

// Create persiste un item de stock nuevo.
func (r *StockRepo) Create(item *entity.StockItem) error {
	if err := putItem(r.client, r.table, "id", item); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un item de stock por ID (nil si no existe).
func (r *StockRepo) GetByID(id string) (*entity.StockItem, error) {
	var item entity.StockItem
	found, err := getItem(r.client, r.table, "id", id, &item)
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

// List lista items de stock (scan con límite).
func (r *StockRepo) List(limit int) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return list, nil
}

// ListByProduct lista el stock de un producto consultando el GSI productId-index.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockItem, error) {
	keyCond := expression.Key("product_id").Equal(expression.Value(productID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build query expression: %w", err)
	}

	res, err := r.client.Query(context.Background(), &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(StockByProductIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("query stock by product: %w", err)
	}

	var list []*entity.StockItem
	if err := unmarshalItems(res.Items, &list); err != nil {
		return nil, fmt.Errorf("unmarshal stock items: %w", err)
	}
	return list, nil
}

// Update sobreescribe un item de stock existente.
func (r *StockRepo) Update(item *entity.StockItem) error {
	if err := replaceItem(r.client, r.table, "id", item); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Delete elimina un item de stock por ID.
func (r *StockRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}
