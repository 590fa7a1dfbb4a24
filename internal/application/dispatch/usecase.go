package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase orquesta el despacho de stock: valida la petición, lee el stock
// disponible y la transportadora, construye Shipment y DispatchRecord y los
// confirma junto con el decremento de stock en una sola transacción.
//
// No hay deduplicación: reenviar la misma petición tras un despacho exitoso
// crea un segundo Shipment/DispatchRecord y un segundo decremento. Es el
// comportamiento documentado, no un defecto.
type UseCase struct {
	stockRepo   repository.StockRepository
	courierRepo repository.CourierRepository
	txRunner    TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository, courierRepo repository.CourierRepository, txRunner TxRunner) *UseCase {
	return &UseCase{stockRepo: stockRepo, courierRepo: courierRepo, txRunner: txRunner}
}

// Dispatch ejecuta el workflow completo. Toda validación ocurre antes de
// cualquier escritura: una petición rechazada es un no-op total.
func (uc *UseCase) Dispatch(ctx context.Context, in dto.DispatchRequest) (*dto.DispatchResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	// Lectura fresca del stock disponible
	stock, err := uc.stockRepo.GetByID(in.StockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	if in.DispatchQuantity > stock.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	// La transportadora se reverifica aquí, no solo al listarla al cliente:
	// pudo desactivarse entre que el usuario la eligió y envió el despacho.
	courier, err := uc.courierRepo.GetByID(in.CourierID)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, domain.ErrNotFound
	}
	if !courier.IsActive {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	shipment := &entity.Shipment{
		ID:                uuid.New().String(),
		CourierID:         courier.ID,
		CourierName:       courier.Name,
		TrackingNumber:    entity.NewTrackingNumber(now),
		CustomerName:      in.CustomerName,
		CustomerAddress:   in.CustomerAddress,
		CustomerPhone:     in.CustomerPhone,
		Status:            entity.ShipmentStatusPending,
		EstimatedDelivery: in.EstimatedDelivery,
		Items: []entity.ShipmentItem{
			{ItemName: stock.ItemName, Quantity: in.DispatchQuantity},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	record := &entity.DispatchRecord{
		DispatchID:         newDispatchID(now),
		StockID:            stock.ID,
		ItemName:           stock.ItemName,
		DispatchedQuantity: in.DispatchQuantity,
		InvoiceID:          in.InvoiceID,
		CustomerID:         in.CustomerID,
		CustomerName:       in.CustomerName,
		ShipmentID:         shipment.ID,
		Status:             entity.DispatchStatusPending,
		DispatchDate:       now,
		Notes:              in.Notes,
		CreatedAt:          now,
	}

	updated, err := uc.txRunner.Commit(ctx, shipment, record, stock.ID, in.DispatchQuantity)
	if err != nil {
		if errors.Is(err, domain.ErrPartialWrite) {
			// Estado ambiguo: queda trazado con los ids generados para que
			// un operador pueda reconciliar contra Shipments y Dispatch.
			log.Error().Err(err).
				Str("stock_id", stock.ID).
				Str("shipment_id", shipment.ID).
				Str("dispatch_id", record.DispatchID).
				Msg("despacho con resultado ambiguo")
		}
		return nil, err
	}

	log.Info().
		Str("stock_id", stock.ID).
		Str("shipment_id", shipment.ID).
		Str("dispatch_id", record.DispatchID).
		Str("tracking_number", shipment.TrackingNumber).
		Int("quantity", in.DispatchQuantity).
		Int("remaining", updated.Quantity).
		Msg("despacho confirmado")

	return &dto.DispatchResponse{
		StockItem:      updated,
		Shipment:       shipment,
		DispatchRecord: record,
	}, nil
}

func validate(in dto.DispatchRequest) error {
	if in.DispatchQuantity <= 0 {
		return domain.ErrInvalidInput
	}
	required := []string{
		in.StockID, in.InvoiceID, in.CustomerID, in.CustomerName,
		in.CourierID, in.CustomerPhone, in.CustomerAddress,
	}
	for _, f := range required {
		if f == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// newDispatchID deriva el id del registro de despacho del reloj.
func newDispatchID(now time.Time) string {
	return fmt.Sprintf("DSP-%d", now.UnixNano())
}
