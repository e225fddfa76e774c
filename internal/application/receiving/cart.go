package receiving

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Estados del carrito de ingreso.
const (
	CartEmpty      = "VACIO"
	CartStaging    = "EN_PREPARACION"
	CartSubmitting = "CONFIRMANDO"
	CartFailed     = "FALLIDO"
)

// StagedItem es un renglón en preparación: transitorio, vive solo en el
// carrito hasta confirmarse (se vuelve movimiento) o removerse.
type StagedItem struct {
	ProductID    string
	ProductName  string
	Level        entity.PackagingLevel
	Quantity     int64 // empaques comprados
	CanonicalQty int64 // unidades canónicas
	TotalCost    decimal.Decimal
	UnitCost     decimal.Decimal
	MarginPct    decimal.Decimal
	Lot          string
	ExpiresAt    time.Time
	Packaging    entity.PackagingTable // ratios vigentes (incluye overrides del operador)
	Prices       map[entity.PackagingLevel]decimal.Decimal
}

// Cart acumula los renglones de una factura de compra. No es seguro para uso
// concurrente por sí mismo; toda mutación pasa por CartStore.
type Cart struct {
	items      []StagedItem
	submitting bool
	failed     bool
}

// State deriva el estado observable del carrito.
func (c *Cart) State() string {
	switch {
	case c.submitting:
		return CartSubmitting
	case len(c.items) == 0:
		return CartEmpty
	case c.failed:
		return CartFailed
	default:
		return CartStaging
	}
}

// Items devuelve una copia de los renglones en su orden de inserción.
func (c *Cart) Items() []StagedItem {
	out := make([]StagedItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) add(item StagedItem) {
	c.items = append(c.items, item)
	c.failed = false
}

func (c *Cart) remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return domain.ErrInvalidInput
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.failed = false
	return nil
}

// beginSubmit transiciona a CONFIRMANDO. Rechaza carrito vacío o un commit ya
// en vuelo (el disparador de UI se deshabilita, pero el servidor también valida).
func (c *Cart) beginSubmit() error {
	if c.submitting {
		return domain.ErrCartSubmitting
	}
	if len(c.items) == 0 {
		return domain.ErrEmptyCart
	}
	c.submitting = true
	return nil
}

// endSubmit cierra el commit: en éxito el carrito vuelve a VACIO; en fallo
// conserva los renglones para reintento o conciliación manual.
func (c *Cart) endSubmit(ok bool) {
	c.submitting = false
	if ok {
		c.items = nil
		c.failed = false
		return
	}
	c.failed = true
}

// CartStore guarda un carrito por operador (alcance: una sesión, un ingreso a
// la vez). Claves por (companyID, userID); sin bloqueo entre sesiones.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewCartStore construye el almacén en memoria.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

func cartKey(companyID, userID string) string {
	return companyID + "|" + userID
}

// Mutate ejecuta fn sobre el carrito del operador bajo el lock del store.
func (s *CartStore) Mutate(companyID, userID string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := cartKey(companyID, userID)
	cart, ok := s.carts[key]
	if !ok {
		cart = &Cart{}
		s.carts[key] = cart
	}
	return fn(cart)
}

// Snapshot devuelve estado y renglones del carrito del operador.
func (s *CartStore) Snapshot(companyID, userID string) (state string, items []StagedItem) {
	state = CartEmpty
	_ = s.Mutate(companyID, userID, func(c *Cart) error {
		state = c.State()
		items = c.Items()
		return nil
	})
	return state, items
}
