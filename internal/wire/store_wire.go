package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(r chi.Router, handler *adaptor.StoreHandler, tokens *token.JWT, log *zap.Logger) {
	// Admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Post("/api/stores", handler.Create)
		r.Get("/api/stores/admin/all", handler.ListAdmin)
		r.Delete("/api/stores/{id}", handler.Delete)
	})

	// Normal users and store owners
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleNormalUser), string(entity.RoleStoreOwner)))

		r.Get("/api/stores/user/list", handler.ListForUser)
	})

	// Any authenticated user
	r.With(middleware.Auth(tokens, log)).Get("/api/stores/{id}", handler.GetByID)
}
