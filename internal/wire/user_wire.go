package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, handler *adaptor.UserHandler, tokens *token.JWT, log *zap.Logger) {
	// Admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Post("/api/users", handler.Create)
		r.Get("/api/users/all", handler.List)
		r.Get("/api/users/dashboard", handler.Dashboard)
		r.Get("/api/users/{id}", handler.GetByID)
		r.Delete("/api/users/{id}", handler.Delete)
	})
}
