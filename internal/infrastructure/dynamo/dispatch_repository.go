package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo implementación de DispatchRepository sobre DynamoDB.
// La tabla usa dispatch_id como clave de partición y no expone Delete:
// el historial de despachos es append-only.
type DispatchRepo struct {
	client *dynamodb.Client
	table  string
}

// NewDispatchRepository construye el adaptador.
func NewDispatchRepository(client *dynamodb.Client, table string) *DispatchRepo {
	return &DispatchRepo{client: client, table: table}
}

func (r *DispatchRepo) Create(record *entity.DispatchRecord) error {
	if err := putItem(r.client, r.table, "dispatch_id", record); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert dispatch record: %w", err)
	}
	return nil
}

func (r *DispatchRepo) GetByID(dispatchID string) (*entity.DispatchRecord, error) {
	var rec entity.DispatchRecord
	found, err := getItem(r.client, r.table, "dispatch_id", dispatchID, &rec)
	if err != nil {
		return nil, fmt.Errorf("get dispatch record: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (r *DispatchRepo) List(limit int) ([]*entity.DispatchRecord, error) {
	var list []*entity.DispatchRecord
	if err := scanItems(r.client, r.table, limit, &list); err != nil {
		return nil, fmt.Errorf("list dispatch records: %w", err)
	}
	return list, nil
}

func (r *DispatchRepo) Update(record *entity.DispatchRecord) error {
	if err := replaceItem(r.client, r.table, "dispatch_id", record); err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update dispatch record: %w", err)
	}
	return nil
}
