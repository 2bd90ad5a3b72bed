package app

import (
	"github.com/avc/payout-console/internal/handlers"
	"github.com/avc/payout-console/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Эндпоинты консоли доступны только операторам.
	// Чтения с заголовком X-Console-Session: новый запрос вкладки отменяет
	// предыдущий (409); без заголовка запросы не отменяют друг друга.
	r.Route("/api", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/stats", deps.handlers.overview.Stats)
		r.Get("/overview", deps.handlers.overview.Overview)

		r.Get("/merchants", deps.handlers.merchants.List)
		r.Get("/merchants/{id}/networks", deps.handlers.merchants.Networks)

		r.Get("/payouts", deps.handlers.payouts.List)
		r.Post("/payouts", deps.handlers.payouts.Create)
		r.Post("/payouts/validate", deps.handlers.payouts.Validate)
		r.Delete("/payouts/{id}", deps.handlers.payouts.Delete)

		r.Get("/audit", deps.handlers.audit.List)
	})
}
