package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, handler *adaptor.AuthHandler, tokens *token.JWT, log *zap.Logger) {
	// Public routes
	r.Post("/api/auth/signup", handler.Signup)
	r.Post("/api/auth/login", handler.Login)

	// Any authenticated user
	r.With(middleware.Auth(tokens, log)).Post("/api/auth/update-password", handler.UpdatePassword)
}
