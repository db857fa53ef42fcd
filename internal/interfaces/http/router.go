package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rrcaps-api/internal/application/analytics"
	"github.com/jhoicas/rrcaps-api/internal/application/auth"
	"github.com/jhoicas/rrcaps-api/internal/application/usecase"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
	"github.com/jhoicas/rrcaps-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CapUC      *usecase.CapUseCase
	CategoryUC *usecase.CategoryUseCase
	StatsUC    *analytics.StatsUseCase
	BulkUC     *analytics.BulkStockUseCase
	UserRepo   repository.UserRepository
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admin := RequireAdmin(deps.Log, deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", admin, authHandler.Verify)
	authGroup.Put("/change-password", admin, authHandler.ChangePassword)

	// Caps: las rutas literales van antes de /:id para que Fiber no las
	// capture como parámetro.
	caps := api.Group("/caps")
	capHandler := NewCapHandler(deps.CapUC)
	caps.Get("/", capHandler.List)
	caps.Get("/search", capHandler.Search)
	caps.Get("/category/:categoryId", capHandler.GetByCategory)
	caps.Get("/:id", capHandler.GetByID)
	caps.Post("/", admin, LogActivity(deps.Log, "cap_create"), capHandler.Create)
	caps.Put("/:id", admin, LogActivity(deps.Log, "cap_update"), capHandler.Update)
	caps.Delete("/:id", admin, LogActivity(deps.Log, "cap_delete"), capHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	adminHandler := NewAdminHandler(deps.StatsUC, deps.BulkUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/stats", adminHandler.CategoryStats)
	categories.Get("/:categoryId/caps", capHandler.GetByCategory)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", admin, LogActivity(deps.Log, "category_create"), categoryHandler.Create)
	categories.Put("/:id", admin, LogActivity(deps.Log, "category_update"), categoryHandler.Update)
	categories.Delete("/:id", admin, LogActivity(deps.Log, "category_delete"), categoryHandler.Delete)

	// Panel de administración (todo protegido)
	adminGroup := api.Group("/admin", admin)
	adminGroup.Get("/stats", adminHandler.Stats)
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Put("/bulk-update-stock", LogActivity(deps.Log, "bulk_stock_update"), adminHandler.BulkUpdateStock)
}
