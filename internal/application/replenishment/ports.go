package replenishment

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de órdenes atado a esa tx. Encabezado y renglones de cada orden
// se escriben juntos o ninguno (sin órdenes a medias).
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.PurchaseOrderRepository) error) error
}
