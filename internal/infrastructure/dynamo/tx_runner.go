package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	appdispatch "github.com/jhoicas/Almacen-api/internal/application/dispatch"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var _ appdispatch.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta las tres escrituras del despacho con TransactWriteItems:
// Put del Shipment, Put del DispatchRecord y decremento condicional del stock.
// DynamoDB aplica todo o nada, así que una condición perdida cancela las tres
// escrituras y el inventario queda intacto.
type TxRunner struct {
	client *dynamodb.Client
	tables Tables
}

// NewTxRunner construye el ejecutor transaccional del despacho.
func NewTxRunner(client *dynamodb.Client, tables Tables) *TxRunner {
	return &TxRunner{client: client, tables: tables}
}

// Commit ejecuta la transacción y devuelve el StockItem ya decrementado.
func (t *TxRunner) Commit(ctx context.Context, shipment *entity.Shipment, record *entity.DispatchRecord, stockID string, quantity int) (*entity.StockItem, error) {
	shipmentItem, err := marshalItem(shipment)
	if err != nil {
		return nil, fmt.Errorf("marshal shipment: %w", err)
	}
	recordItem, err := marshalItem(record)
	if err != nil {
		return nil, fmt.Errorf("marshal dispatch record: %w", err)
	}

	update := expression.Set(
		expression.Name("quantity"),
		expression.Name("quantity").Minus(expression.Value(quantity)),
	)
	cond := expression.Name("id").AttributeExists().
		And(expression.Name("quantity").GreaterThanEqual(expression.Value(quantity)))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("build stock update expression: %w", err)
	}

	// El orden de los ítems importa para mapear CancellationReasons:
	// 0 = Shipment, 1 = DispatchRecord, 2 = decremento de stock.
	_, err = t.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(t.tables.Shipments),
					Item:                shipmentItem,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(t.tables.Dispatch),
					Item:                recordItem,
					ConditionExpression: aws.String("attribute_not_exists(dispatch_id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:                 aws.String(t.tables.Stock),
					Key:                       key("id", stockID),
					UpdateExpression:          expr.Update(),
					ConditionExpression:       expr.Condition(),
					ExpressionAttributeNames:  expr.Names(),
					ExpressionAttributeValues: expr.Values(),
				},
			},
		},
	})
	if err != nil {
		return nil, t.mapTransactError(err, shipment.ID, record.DispatchID, stockID)
	}

	// La transacción no devuelve atributos; releer el item decrementado.
	// Si la relectura falla las tres escrituras ya quedaron aplicadas, así
	// que se reporta como escritura parcial para disparar reconciliación.
	var item entity.StockItem
	found, err := getItem(t.client, t.tables.Stock, "id", stockID, &item)
	if err != nil || !found {
		log.Error().
			Err(err).
			Str("stock_id", stockID).
			Str("shipment_id", shipment.ID).
			Str("dispatch_id", record.DispatchID).
			Msg("despacho confirmado pero la relectura de stock falló")
		return nil, domain.ErrPartialWrite
	}
	return &item, nil
}

// mapTransactError traduce la cancelación de la transacción a errores de
// dominio según la posición del ítem que falló.
func (t *TxRunner) mapTransactError(err error, shipmentID, dispatchID, stockID string) error {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return fmt.Errorf("dispatch transaction: %w", err)
	}

	for i, reason := range canceled.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		switch i {
		case 0, 1:
			// Colisión de id en Shipment o DispatchRecord.
			return domain.ErrDuplicate
		case 2:
			// Otra petición consumió el stock entre la validación y el commit.
			return fmt.Errorf("stock insuficiente al confirmar: %w", domain.ErrConflict)
		}
	}

	// Cancelación sin razón atribuible a un ítem concreto: no se puede saber
	// qué quedó escrito.
	log.Error().
		Err(err).
		Str("stock_id", stockID).
		Str("shipment_id", shipmentID).
		Str("dispatch_id", dispatchID).
		Msg("transacción de despacho cancelada sin razón atribuible")
	return domain.ErrPartialWrite
}
