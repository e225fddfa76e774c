package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El catálogo se administra desde pantallas externas; este núcleo solo lee
// productos y les aplica ingresos de mercancía.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// SearchByName busca por nombre normalizado (sin tildes, minúsculas) o SKU exacto.
	SearchByName(companyID, normalizedQuery string, limit, offset int) ([]*entity.Product, error)
	// ListAllByCompany devuelve el catálogo completo para el análisis de reposición.
	ListAllByCompany(companyID string) ([]*entity.Product, error)
	// ApplyReceipt persiste los campos que muta un ingreso: stock, costo,
	// precios por nivel, tabla de empaques, lote y vencimiento.
	ApplyReceipt(product *entity.Product) error
}
