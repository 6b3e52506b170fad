package usecase

import (
	"store-ratings/internal/data/repository"
	"store-ratings/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Store  StoreService
	Rating RatingService
}

func NewService(repo *repository.Repository, tokens *token.JWT, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		User:   NewUserService(repo, log),
		Store:  NewStoreService(repo, log),
		Rating: NewRatingService(repo, log),
	}
}
