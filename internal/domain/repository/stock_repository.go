package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para StockItem.
// El decremento del despacho no pasa por aquí: vive en la transacción del
// TxRunner para que las tres escrituras sean todo o nada.
type StockRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	List(limit int) ([]*entity.StockItem, error)
	ListByProduct(productID string) ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
}
