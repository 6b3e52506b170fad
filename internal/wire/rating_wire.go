package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(r chi.Router, handler *adaptor.RatingHandler, tokens *token.JWT, log *zap.Logger) {
	// Normal users
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleNormalUser)))

		r.Post("/api/ratings/submit", handler.Submit)
		r.Get("/api/ratings/user/{store_id}", handler.GetUserRating)
	})

	// Store owners; ownership of the particular store is checked in the service
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleStoreOwner)))

		r.Get("/api/ratings/store/{store_id}", handler.GetStoreRatings)
	})

	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Get("/api/ratings/admin/all", handler.ListAll)
	})
}
