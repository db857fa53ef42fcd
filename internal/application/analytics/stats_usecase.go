// Package analytics contiene los casos de uso de estadísticas del catálogo y
// las operaciones masivas del panel de administración.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

const (
	// LowStockThreshold stock por debajo del cual una gorra se considera
	// "stock bajo" (estricto: stock == threshold NO cuenta).
	LowStockThreshold = 5

	dashboardRecentCaps       = 5
	dashboardRecentCategories = 3
)

// StatsUseCase genera los agregados del panel de admin y las estadísticas
// públicas por categoría. Todas las consultas toleran un catálogo vacío.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetAdminStats construye las estadísticas completas para el panel de admin:
// conteos globales, rollup por categoría, precios globales y los conjuntos de
// stock bajo / sin stock.
func (uc *StatsUseCase) GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totalCaps, err := uc.statsRepo.CountCaps(ctx)
	if err != nil {
		return nil, err
	}
	totalCategories, err := uc.statsRepo.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	rollups, err := uc.statsRepo.CapsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	priceStats, err := uc.statsRepo.GlobalPriceStats(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.statsRepo.LowStock(ctx, LowStockThreshold)
	if err != nil {
		return nil, err
	}
	outOfStock, err := uc.statsRepo.OutOfStock(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		Summary: dto.StatsSummaryDTO{
			TotalCaps:       totalCaps,
			TotalCategories: totalCategories,
			LowStockItems:   len(lowStock),
			OutOfStockItems: len(outOfStock),
		},
		CapsByCategory: toRollupDTOs(rollups),
		LowStockCaps:   toCapResponses(lowStock),
		OutOfStockCaps: toCapResponses(outOfStock),
		PriceStats: dto.PriceStatsDTO{
			AvgPrice: priceStats.AvgPrice,
			MinPrice: priceStats.MinPrice,
			MaxPrice: priceStats.MaxPrice,
		},
		LastUpdated: time.Now(),
	}, nil
}

// GetCategoryStats devuelve el rollup por categoría (endpoint público).
func (uc *StatsUseCase) GetCategoryStats(ctx context.Context) (*dto.CategoryStatsResponse, error) {
	rollups, err := uc.statsRepo.CapsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryStatsResponse{Stats: toRollupDTOs(rollups)}, nil
}

// GetDashboard arma la vista de dashboard del admin: identidad, actividad
// reciente del catálogo y accesos rápidos.
func (uc *StatsUseCase) GetDashboard(ctx context.Context, adminName, adminEmail string) (*dto.DashboardResponse, error) {
	recentCaps, err := uc.statsRepo.RecentCaps(ctx, dashboardRecentCaps)
	if err != nil {
		return nil, err
	}
	recentCategories, err := uc.statsRepo.RecentCategories(ctx, dashboardRecentCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryResponse, 0, len(recentCategories))
	for i := range recentCategories {
		c := &recentCategories[i]
		categories = append(categories, dto.CategoryResponse{
			ID:          c.ID.Hex(),
			Name:        c.Name,
			Description: c.Description,
			Logo:        c.Logo,
			League:      c.League,
			FoundedYear: c.FoundedYear,
			City:        c.City,
			Colors:      c.Colors,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return &dto.DashboardResponse{
		Admin: dto.DashboardAdminDTO{Name: adminName, Email: adminEmail},
		RecentActivity: dto.DashboardRecentDTO{
			Caps:       toCapResponses(recentCaps),
			Categories: categories,
		},
		QuickActions: []dto.QuickActionDTO{
			{Action: "Crear gorra", Endpoint: "POST /api/caps"},
			{Action: "Crear categoría", Endpoint: "POST /api/categories"},
			{Action: "Ver estadísticas", Endpoint: "GET /api/admin/stats"},
		},
	}, nil
}

func toRollupDTOs(rollups []repository.CategoryRollup) []dto.CategoryRollupDTO {
	out := make([]dto.CategoryRollupDTO, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.CategoryRollupDTO{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			TotalCaps:    r.TotalCaps,
			AvgPrice:     r.AvgPrice,
			MinPrice:     r.MinPrice,
			MaxPrice:     r.MaxPrice,
			TotalStock:   r.TotalStock,
		})
	}
	return out
}

func toCapResponses(caps []repository.CapWithCategory) []dto.CapResponse {
	out := make([]dto.CapResponse, 0, len(caps))
	for i := range caps {
		c := &caps[i]
		item := dto.CapResponse{
			ID:          c.Cap.ID.Hex(),
			Name:        c.Cap.Name,
			Price:       c.Cap.Price,
			Image:       c.Cap.Image,
			Description: c.Cap.Description,
			CategoryID:  c.Cap.CategoryID.Hex(),
			Stock:       c.Cap.Stock,
			Size:        c.Cap.Size,
			Material:    c.Cap.Material,
			CreatedAt:   c.Cap.CreatedAt,
			UpdatedAt:   c.Cap.UpdatedAt,
		}
		if c.Category != nil {
			item.Category = &dto.CategoryRefDTO{
				Name:   c.Category.Name,
				League: c.Category.League,
				Logo:   c.Category.Logo,
			}
		}
		out = append(out, item)
	}
	return out
}
