package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/application/usecase"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// CapHandler maneja las peticiones HTTP del catálogo de gorras.
type CapHandler struct {
	uc *usecase.CapUseCase
}

// NewCapHandler construye el handler.
func NewCapHandler(uc *usecase.CapUseCase) *CapHandler {
	return &CapHandler{uc: uc}
}

// parseCapFilter lee los query params de filtrado/orden comunes a listado y
// búsqueda. minPrice/maxPrice inválidos son error de validación, no 500.
func parseCapFilter(c *fiber.Ctx) (repository.CapFilter, *dto.ErrorResponse) {
	filter := repository.CapFilter{
		Name:       c.Query("name"),
		CategoryID: c.Query("category"),
		Size:       c.Query("size"),
		Material:   c.Query("material"),
		Query:      c.Query("q"),
		SortBy:     c.Query("sortBy"),
		SortDir:    c.Query("sortDir"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, &dto.ErrorResponse{Code: "VALIDATION", Message: "minPrice debe ser numérico"}
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, &dto.ErrorResponse{Code: "VALIDATION", Message: "maxPrice debe ser numérico"}
		}
		filter.MaxPrice = &v
	}
	return filter, nil
}

// List godoc
// @Summary      Listar gorras con filtros opcionales
// @Tags         caps
// @Produce      json
// @Param        name      query  string  false  "Substring del nombre (case-insensitive)"
// @Param        minPrice  query  number  false  "Precio mínimo (inclusive)"
// @Param        maxPrice  query  number  false  "Precio máximo (inclusive)"
// @Param        category  query  string  false  "ID de categoría"
// @Param        size      query  string  false  "Talla (S, M, L, XL, Adjustable)"
// @Param        material  query  string  false  "Substring del material"
// @Param        sortBy    query  string  false  "Campo de orden"
// @Param        sortDir   query  string  false  "asc | desc"
// @Success      200  {object}  dto.CapListResponse
// @Router       /api/caps [get]
func (h *CapHandler) List(c *fiber.Ctx) error {
	filter, errResp := parseCapFilter(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar gorras por término libre
// @Description  Coincide si el término aparece en name, description o material
// @Tags         caps
// @Produce      json
// @Param        q        query  string  true   "Término de búsqueda"
// @Param        sortBy   query  string  false  "Campo de orden"
// @Param        sortDir  query  string  false  "asc | desc"
// @Success      200  {object}  dto.CapListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/caps/search [get]
func (h *CapHandler) Search(c *fiber.Ctx) error {
	filter, errResp := parseCapFilter(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.uc.Search(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener gorra por ID (con su categoría completa)
// @Tags         caps
// @Produce      json
// @Param        id   path  string  true  "ID de la gorra"
// @Success      200  {object}  dto.CapDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caps/{id} [get]
func (h *CapHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByCategory godoc
// @Summary      Obtener gorras de una categoría
// @Tags         caps
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryWithCapsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caps/category/{categoryId} [get]
// @Router       /api/categories/{categoryId}/caps [get]
func (h *CapHandler) GetByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear gorra
// @Tags         caps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCapRequest  true  "Datos de la gorra"
// @Success      201   {object}  dto.CapDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caps [post]
func (h *CapHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar gorra
// @Tags         caps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la gorra"
// @Param        body  body  dto.UpdateCapRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CapDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/caps/{id} [put]
func (h *CapHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gorra
// @Tags         caps
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la gorra"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caps/{id} [delete]
func (h *CapHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Gorra eliminada correctamente"})
}
