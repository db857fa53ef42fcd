package dto

import "time"

// CreateCapRequest entrada para crear una gorra.
// Price es puntero para distinguir "no enviado" de 0.
type CreateCapRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	CategoryID  string   `json:"category" validate:"required"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Size        string   `json:"size"`
	Material    string   `json:"material"`
}

// UpdateCapRequest entrada para actualizar una gorra (parcial).
type UpdateCapRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"category"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Size        *string  `json:"size"`
	Material    *string  `json:"material"`
}

// CategoryRefDTO resumen de categoría embebido en listados de gorras.
type CategoryRefDTO struct {
	Name   string `json:"name"`
	League string `json:"league"`
	Logo   string `json:"logo,omitempty"`
}

// CapResponse salida de una gorra en listados (categoría proyectada).
type CapResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Category    *CategoryRefDTO `json:"category,omitempty"`
	Stock       int             `json:"stock"`
	Size        string          `json:"size"`
	Material    string          `json:"material"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CapDetailResponse salida de detalle: gorra + categoría completa.
type CapDetailResponse struct {
	CapResponse
	CategoryDetail *CategoryResponse `json:"categoryDetail,omitempty"`
}

// CapListResponse lista de gorras.
type CapListResponse struct {
	Items []CapResponse `json:"items"`
	Total int           `json:"total"`
}
