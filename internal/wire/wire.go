package wire

import (
	"net/http"

	"store-ratings/internal/adaptor"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"
	"store-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes.
func Wiring(service *usecase.Service, tokens *token.JWT, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.JWT, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, tokens, logger)
	wireUser(r, handler.User, tokens, logger)
	wireStore(r, handler.Store, tokens, logger)
	wireRating(r, handler.Rating, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
