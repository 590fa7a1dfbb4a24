// Package dynamo implementa los puertos de persistencia sobre DynamoDB
// (una tabla por entidad, aws-sdk-go-v2). Las tablas se asumen
// pre-existentes: no hay sistema de migraciones.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	appcfg "github.com/jhoicas/Almacen-api/pkg/config"
)

// NewClient crea el cliente DynamoDB a partir de la configuración de la app.
// Con Endpoint definido apunta a DynamoDB Local (desarrollo y tests de
// integración); credenciales estáticas solo si vienen en la config, si no
// se usa la cadena por defecto del SDK.
func NewClient(ctx context.Context, cfg appcfg.AWSConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Tables resuelve los nombres de tabla por entidad, con prefijo opcional
// por ambiente (ej. "dev_").
type Tables struct {
	Products       string
	Stock          string
	Orders         string
	Customers      string
	Suppliers      string
	Invoices       string
	PurchaseOrders string
	Dispatch       string
	Couriers       string
	Shipments      string
}

// NewTables construye los nombres de tabla a partir del prefijo.
func NewTables(prefix string) Tables {
	return Tables{
		Products:       prefix + "Products",
		Stock:          prefix + "Stock",
		Orders:         prefix + "Orders",
		Customers:      prefix + "Customers",
		Suppliers:      prefix + "Suppliers",
		Invoices:       prefix + "Invoices",
		PurchaseOrders: prefix + "PurchaseOrders",
		Dispatch:       prefix + "Dispatch",
		Couriers:       prefix + "Couriers",
		Shipments:      prefix + "Shipments",
	}
}

// StockByProductIndex índice secundario global de la tabla Stock.
const StockByProductIndex = "productId-index"
