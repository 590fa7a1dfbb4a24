package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrPartialWrite indica que el commit del despacho terminó en estado
	// ambiguo: la transacción fue cancelada sin razones por ítem o falló
	// después del envío. El operador debe revisar Shipments y Dispatch
	// antes de reintentar.
	ErrPartialWrite = errors.New("resultado ambiguo del despacho, requiere reconciliación manual")
)
