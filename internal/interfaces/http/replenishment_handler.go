package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/replenishment"
)

// ReplenishmentHandler análisis de reposición y generación de borradores de
// órdenes de compra (protegido).
type ReplenishmentHandler struct {
	advisorUC   *replenishment.AdvisorUseCase
	generatorUC *replenishment.GeneratorUseCase
	orderUC     *replenishment.OrderQueryUseCase
}

// NewReplenishmentHandler construye el handler de reposición.
func NewReplenishmentHandler(
	advisorUC *replenishment.AdvisorUseCase,
	generatorUC *replenishment.GeneratorUseCase,
	orderUC *replenishment.OrderQueryUseCase,
) *ReplenishmentHandler {
	return &ReplenishmentHandler{advisorUC: advisorUC, generatorUC: generatorUC, orderUC: orderUC}
}

// Advise godoc
// @Summary      Análisis de reposición por laboratorio
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdviceResponse
// @Router       /api/replenishment/advice [get]
func (h *ReplenishmentHandler) Advise(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.advisorUC.Advise(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateOrders godoc
// @Summary      Generar borradores de órdenes de compra
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateOrdersRequest  true  "grupos con proveedor y selección"
// @Success      200   {object}  dto.GenerateOrdersResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/orders [post]
func (h *ReplenishmentHandler) GenerateOrders(c *fiber.Ctx) error {
	var in dto.GenerateOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.generatorUC.Generate(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar órdenes de compra
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.OrderResponse
// @Router       /api/replenishment/orders [get]
func (h *ReplenishmentHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	out, err := h.orderUC.List(c.Context(), GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      Obtener orden de compra con renglones
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/replenishment/orders/{id} [get]
func (h *ReplenishmentHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.orderUC.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}
