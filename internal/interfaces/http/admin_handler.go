package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rrcaps-api/internal/application/analytics"
	"github.com/jhoicas/rrcaps-api/internal/application/dto"
)

// AdminHandler expone estadísticas y operaciones masivas del panel de
// administración.
type AdminHandler struct {
	stats *analytics.StatsUseCase
	bulk  *analytics.BulkStockUseCase
}

func NewAdminHandler(stats *analytics.StatsUseCase, bulk *analytics.BulkStockUseCase) *AdminHandler {
	return &AdminHandler{stats: stats, bulk: bulk}
}

// Stats godoc
// @Summary      Estadísticas generales del catálogo
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.GetAdminStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CategoryStats godoc
// @Summary      Estadísticas agregadas por categoría
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryStatsResponse
// @Router       /api/categories/stats [get]
func (h *AdminHandler) CategoryStats(c *fiber.Ctx) error {
	out, err := h.stats.GetCategoryStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen para el panel del administrador
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.stats.GetDashboard(c.Context(), GetName(c), GetEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// BulkUpdateStock godoc
// @Summary      Actualización masiva de stock
// @Description  Procesa cada entrada de forma independiente; nunca aborta el
// @Description  lote completo por una entrada fallida
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateStockRequest  true  "Entradas de stock"
// @Success      200   {object}  dto.BulkUpdateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/bulk-update-stock [put]
func (h *AdminHandler) BulkUpdateStock(c *fiber.Ctx) error {
	var in dto.BulkUpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bulk.UpdateStock(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
