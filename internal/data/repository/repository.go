package repository

import (
	"store-ratings/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Store  StoreRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Store:  NewStoreRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}
