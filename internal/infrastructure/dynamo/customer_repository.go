package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre DynamoDB.
type CustomerRepo struct {
	client *dynamodb.Client
	table  string
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(client *dynamodb.Client, table string) *CustomerRepo {
	return &CustomerRepo{client: client, table: table}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if err := putItem(r.client, r.table, "id", customer); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	found, err := getItem(r.client, r.table, "id", id, &c)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) List(limit int) ([]*entity.Customer, error) {
	var list []*entity.Customer
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return list, nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	if err := replaceItem(r.client, r.table, "id", customer); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	if err := deleteItem(r.client, r.table, "id", id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
