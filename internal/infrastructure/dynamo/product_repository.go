package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre DynamoDB.
type ProductRepo struct {
	client *dynamodb.Client
	table  string
}

// NewProductRepository construye el adaptador.
func NewProductRepository(client *dynamodb.Client, table string) *ProductRepo {
	return &ProductRepo{client: client, table: table}
}

// Create persiste un producto nuevo (falla con ErrDuplicate si el id existe).
func (r *ProductRepo) Create(product *entity.Product) error {
	if err := putItem(r.client, r.table, "id", product); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	found, err := getItem(r.client, r.table, "id", id, &p)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// List lista productos (scan con límite).
func (r *ProductRepo) List(limit int) ([]*entity.Product, error) {
	var list []*entity.Product
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Update sobreescribe un producto existente (ErrNotFound si no existe).
func (r *ProductRepo) Update(product *entity.Product) error {
	if err := replaceItem(r.client, r.table, "id", product); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
