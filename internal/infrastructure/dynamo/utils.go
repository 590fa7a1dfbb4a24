package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// isConditionalCheckFailed verifica si un error es una condición fallida
// (id duplicado en Put condicional, o condición de update no satisfecha).
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// marshalItem serializa con UseEncodingMarshalers: sin esa opción los campos
// decimal.Decimal y time.Time (sin campos exportados) quedan como mapas
// vacíos y se pierden en la tabla.
func marshalItem(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.UseEncodingMarshalers = true
	})
}

// unmarshalItem es la contraparte de marshalItem para un registro.
func unmarshalItem(m map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(m, out, func(o *attributevalue.DecoderOptions) {
		o.UseEncodingUnmarshalers = true
	})
}

// unmarshalItems es la contraparte de marshalItem para listas (Scan/Query).
func unmarshalItems(ms []map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalListOfMapsWithOptions(ms, out, func(o *attributevalue.DecoderOptions) {
		o.UseEncodingUnmarshalers = true
	})
}

// key construye la clave primaria {attr: id}.
func key(attr, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attr: &types.AttributeValueMemberS{Value: id},
	}
}

// putItem inserta un registro con condición de no-existencia sobre keyAttr.
func putItem(c *dynamodb.Client, table, keyAttr string, v any) error {
	item, err := marshalItem(v)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = c.PutItem(context.Background(), &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String(fmt.Sprintf("attribute_not_exists(%s)", keyAttr)),
	})
	return err
}

// getItem lee un registro por clave y lo deserializa en out.
// found = false si el registro no existe.
func getItem(c *dynamodb.Client, table, keyAttr, id string, out any) (found bool, err error) {
	res, err := c.GetItem(context.Background(), &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key(keyAttr, id),
	})
	if err != nil {
		return false, fmt.Errorf("get item: %w", err)
	}
	if res.Item == nil {
		return false, nil
	}
	if err := unmarshalItem(res.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal item: %w", err)
	}
	return true, nil
}

// scanItems lee hasta limit registros de la tabla y los deserializa en out
// (puntero a slice).
func scanItems(c *dynamodb.Client, table string, limit int, out any) error {
	res, err := c.Scan(context.Background(), &dynamodb.ScanInput{
		TableName: aws.String(table),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", table, err)
	}
	if err := unmarshalItems(res.Items, out); err != nil {
		return fmt.Errorf("unmarshal scan %s: %w", table, err)
	}
	return nil
}

// replaceItem sobreescribe un registro exigiendo que exista (update completo).
func replaceItem(c *dynamodb.Client, table, keyAttr string, v any) error {
	item, err := marshalItem(v)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = c.PutItem(context.Background(), &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(%s)", keyAttr)),
	})
	return err
}

// deleteItem elimina un registro por clave.
func deleteItem(c *dynamodb.Client, table, keyAttr, id string) error {
	_, err := c.DeleteItem(context.Background(), &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key(keyAttr, id),
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
