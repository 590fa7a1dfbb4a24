package dispatch

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// TxRunner ejecuta las tres escrituras del despacho (Shipment, DispatchRecord,
// decremento de stock) como una sola transacción de DynamoDB.
// El decremento es condicional (quantity >= cantidad despachada): si otra
// petición consumió el stock entre la validación y el commit, la transacción
// completa se cancela y ninguna escritura queda aplicada.
type TxRunner interface {
	// Commit devuelve el StockItem ya decrementado. Errores esperados:
	// domain.ErrConflict (condición de stock perdida en carrera),
	// domain.ErrDuplicate (colisión de id), domain.ErrPartialWrite
	// (cancelación sin razones por ítem o fallo tras el envío).
	Commit(ctx context.Context, shipment *entity.Shipment, record *entity.DispatchRecord, stockID string, quantity int) (*entity.StockItem, error)
}
