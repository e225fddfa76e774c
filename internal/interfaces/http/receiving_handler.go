package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/receiving"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// ReceivingHandler pantalla de ingreso de mercancía: vista previa de precios,
// carrito y confirmación de factura (protegido).
type ReceivingHandler struct {
	cartUC   *receiving.CartUseCase
	commitUC *receiving.CommitUseCase
}

// NewReceivingHandler construye el handler de ingreso.
func NewReceivingHandler(cartUC *receiving.CartUseCase, commitUC *receiving.CommitUseCase) *ReceivingHandler {
	return &ReceivingHandler{cartUC: cartUC, commitUC: commitUC}
}

// mapDomainError traduce errores de dominio a respuestas HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "recurso de otra farmacia"})
	case errors.Is(err, domain.ErrMissingRequiredField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUndefinedPackagingLevel),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrCartSubmitting):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CART_SUBMITTING", Message: "hay una confirmación en curso"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Preview godoc
// @Summary      Vista previa de conversión y precios
// @Tags         receiving
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewRequest  true  "Datos del renglón"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receiving/preview [post]
func (h *ReceivingHandler) Preview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cartUC.Preview(c.Context(), companyID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetCart godoc
// @Summary      Ver carrito de ingreso
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/receiving/cart [get]
func (h *ReceivingHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.cartUC.GetCart(c.Context(), GetCompanyID(c), GetUserID(c)))
}

// AddItem godoc
// @Summary      Agregar renglón al carrito
// @Tags         receiving
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Renglón validado"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receiving/cart/items [post]
func (h *ReceivingHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cartUC.AddItem(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Retirar renglón del carrito por índice
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Índice del renglón (base 0)"
// @Success      200    {object}  dto.CartResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/receiving/cart/items/{index} [delete]
func (h *ReceivingHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	out, err := h.cartUC.RemoveItem(c.Context(), GetCompanyID(c), GetUserID(c), index)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// LotExpiry godoc
// @Summary      Vencimiento del último ingreso de un lote
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "ID del producto"
// @Param        lot         query  string  true  "Número de lote"
// @Success      200  {object}  dto.LotExpiryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/receiving/lot-expiry [get]
func (h *ReceivingHandler) LotExpiry(c *fiber.Ctx) error {
	out, err := h.cartUC.LotExpiry(c.Context(), GetCompanyID(c), c.Query("product_id"), c.Query("lot"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar factura del carrito
// @Tags         receiving
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitRequest  true  "proveedor y número de factura"
// @Success      200   {object}  dto.CommitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receiving/commit [post]
func (h *ReceivingHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.commitUC.Commit(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		var partial *receiving.PartialCommitError
		if errors.As(err, &partial) {
			// Commit parcial: el detalle por renglón permite reintentar o conciliar.
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"code":           "PARTIAL_COMMIT",
				"message":        partial.Error(),
				"invoice_number": partial.InvoiceNumber,
				"committed":      partial.Committed,
				"items":          partial.Results,
			})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
