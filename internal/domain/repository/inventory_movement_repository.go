package repository

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para ingresos
// de mercancía. Los registros son inmutables: solo inserción y lectura.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByCompany(companyID, productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	// GetLatestByProductAndLot devuelve el ingreso más reciente de ese
	// (producto, lote), o nil si no existe. Usado para pre-llenar el vencimiento
	// cuando el operador digita un lote ya conocido.
	GetLatestByProductAndLot(companyID, productID, lot string) (*entity.InventoryMovement, error)
}
