package repository

import (
	"context"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
)

// CategoryRollup agregado por categoría (count, precios, stock total).
type CategoryRollup struct {
	CategoryID   string  `bson:"-"`
	CategoryName string  `bson:"categoryName"`
	TotalCaps    int64   `bson:"totalCaps"`
	AvgPrice     float64 `bson:"avgPrice"`
	MinPrice     float64 `bson:"minPrice"`
	MaxPrice     float64 `bson:"maxPrice"`
	TotalStock   int64   `bson:"totalStock"`
}

// PriceStats agregado global de precios sobre todo el catálogo.
type PriceStats struct {
	AvgPrice float64 `bson:"avgPrice"`
	MinPrice float64 `bson:"minPrice"`
	MaxPrice float64 `bson:"maxPrice"`
}

// StatsRepository consultas de solo lectura para estadísticas del catálogo.
// Todas las operaciones toleran una colección vacía (cero/listas vacías).
type StatsRepository interface {
	CountCaps(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	// CapsByCategory agrupa por categoría, ordenado por TotalCaps descendente.
	CapsByCategory(ctx context.Context) ([]CategoryRollup, error)
	// GlobalPriceStats devuelve avg/min/max de precio; en catálogo vacío, ceros.
	GlobalPriceStats(ctx context.Context) (*PriceStats, error)
	// LowStock devuelve gorras con 0 <= stock < threshold, orden stock ascendente.
	LowStock(ctx context.Context, threshold int) ([]CapWithCategory, error)
	// OutOfStock devuelve gorras con stock == 0, orden nombre ascendente.
	OutOfStock(ctx context.Context) ([]CapWithCategory, error)
	// RecentCaps / RecentCategories: últimos actualizados, para el dashboard.
	RecentCaps(ctx context.Context, limit int) ([]CapWithCategory, error)
	RecentCategories(ctx context.Context, limit int) ([]entity.Category, error)
}
