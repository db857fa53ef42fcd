package dto

import "time"

// CategoryRollupDTO agregado por categoría para estadísticas.
type CategoryRollupDTO struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	TotalCaps    int64   `json:"totalCaps"`
	AvgPrice     float64 `json:"avgPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	TotalStock   int64   `json:"totalStock"`
}

// PriceStatsDTO agregado global de precios.
type PriceStatsDTO struct {
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// StatsSummaryDTO conteos globales para el panel de admin.
type StatsSummaryDTO struct {
	TotalCaps       int64 `json:"totalCaps"`
	TotalCategories int64 `json:"totalCategories"`
	LowStockItems   int   `json:"lowStockItems"`
	OutOfStockItems int   `json:"outOfStockItems"`
}

// AdminStatsResponse estadísticas completas del panel de admin.
type AdminStatsResponse struct {
	Summary        StatsSummaryDTO     `json:"summary"`
	CapsByCategory []CategoryRollupDTO `json:"capsByCategory"`
	LowStockCaps   []CapResponse       `json:"lowStockCaps"`
	OutOfStockCaps []CapResponse       `json:"outOfStockCaps"`
	PriceStats     PriceStatsDTO       `json:"priceStats"`
	LastUpdated    time.Time           `json:"lastUpdated"`
}

// CategoryStatsResponse rollup por categoría (endpoint público /categories/stats).
type CategoryStatsResponse struct {
	Stats []CategoryRollupDTO `json:"stats"`
}

// QuickActionDTO acceso rápido del dashboard.
type QuickActionDTO struct {
	Action   string `json:"action"`
	Endpoint string `json:"endpoint"`
}

// DashboardAdminDTO identidad del admin autenticado en el dashboard.
type DashboardAdminDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardRecentDTO actividad reciente del catálogo.
type DashboardRecentDTO struct {
	Caps       []CapResponse      `json:"caps"`
	Categories []CategoryResponse `json:"categories"`
}

// DashboardResponse vista del dashboard de administrador.
type DashboardResponse struct {
	Admin          DashboardAdminDTO  `json:"admin"`
	RecentActivity DashboardRecentDTO `json:"recentActivity"`
	QuickActions   []QuickActionDTO   `json:"quickActions"`
}

// BulkStockUpdate una entrada de la actualización masiva de stock.
// Stock es puntero para distinguir "faltante" de 0.
type BulkStockUpdate struct {
	ID    string `json:"id"`
	Stock *int   `json:"stock"`
}

// BulkUpdateStockRequest entrada de la operación masiva.
type BulkUpdateStockRequest struct {
	Updates []BulkStockUpdate `json:"updates"`
}

// BulkStockResult resultado por entrada (éxito o fallo, nunca aborta el resto).
type BulkStockResult struct {
	ID      string       `json:"id"`
	Success bool         `json:"success"`
	Cap     *CapResponse `json:"cap,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// BulkSummaryDTO resumen de la operación masiva.
type BulkSummaryDTO struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BulkUpdateStockResponse salida de la operación masiva.
type BulkUpdateStockResponse struct {
	Message string            `json:"message"`
	Results []BulkStockResult `json:"results"`
	Summary BulkSummaryDTO    `json:"summary"`
}
