package adaptor

import (
	"store-ratings/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Store  *StoreHandler
	Rating *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Store:  NewStoreHandler(service.Store, log),
		Rating: NewRatingHandler(service.Rating, log),
	}
}
