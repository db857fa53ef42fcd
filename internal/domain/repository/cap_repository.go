package repository

import (
	"context"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
)

// CapFilter parámetros opcionales de filtrado/búsqueda/orden para el catálogo.
// Query (búsqueda full-text sobre name/description/material) tiene precedencia
// sobre Name: la operación de búsqueda nunca aplica ambos a la vez.
type CapFilter struct {
	Name       string
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID string
	Size       string
	Material   string
	Query      string
	SortBy     string
	SortDir    string // "desc" → descendente; cualquier otro valor → ascendente
}

// CategoryRef subconjunto proyectado de la categoría con el que se enriquecen
// los listados de gorras (análogo a populate('category', 'name league logo')).
type CategoryRef struct {
	ID     string `bson:"-"`
	Name   string `bson:"name"`
	League string `bson:"league"`
	Logo   string `bson:"logo,omitempty"`
}

// CapWithCategory gorra enriquecida con el resumen de su categoría.
type CapWithCategory struct {
	Cap      entity.Cap
	Category *CategoryRef // nil si la categoría referenciada ya no existe
}

// CapDetail gorra con la categoría completa embebida (vista de detalle).
type CapDetail struct {
	Cap      entity.Cap
	Category *entity.Category
}

// CapRepository define el puerto de persistencia para Cap (DIP).
type CapRepository interface {
	List(ctx context.Context, filter CapFilter) ([]CapWithCategory, error)
	GetByID(ctx context.Context, id string) (*CapDetail, error)
	ListByCategory(ctx context.Context, categoryID string) ([]CapWithCategory, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	Create(ctx context.Context, cap *entity.Cap) (string, error)
	Update(ctx context.Context, cap *entity.Cap) error
	UpdateStock(ctx context.Context, id string, stock int) (*CapWithCategory, error)
	Delete(ctx context.Context, id string) error
}
