package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría (equipo).
type CreateCategoryRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	League      string   `json:"league"`
	FoundedYear *int     `json:"foundedYear"`
	City        string   `json:"city"`
	Colors      []string `json:"colors"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (parcial).
type UpdateCategoryRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Logo        *string   `json:"logo"`
	League      *string   `json:"league"`
	FoundedYear *int      `json:"foundedYear"`
	City        *string   `json:"city"`
	Colors      *[]string `json:"colors"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	League      string    `json:"league"`
	FoundedYear *int      `json:"foundedYear,omitempty"`
	City        string    `json:"city,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}

// CategoryWithCapsResponse categoría con sus gorras asociadas.
type CategoryWithCapsResponse struct {
	Category  CategoryResponse `json:"category"`
	Caps      []CapResponse    `json:"caps"`
	TotalCaps int              `json:"totalCaps"`
}
