package entity

import (
	"github.com/google/uuid"
)

type Store struct {
	Base
	Name    string     `db:"name"`
	Email   string     `db:"email"`
	Address string     `db:"address"`
	OwnerID *uuid.UUID `db:"owner_id"`
}

// StoreWithStats is a store row joined with its rating aggregates.
// AverageRating is nil for stores that have no ratings yet.
type StoreWithStats struct {
	Store
	AverageRating *float64 `db:"average_rating"`
	TotalRatings  int64    `db:"total_ratings"`
	OwnerName     *string  `db:"owner_name"`
}

// StoreForUser is the listing row for normal users and store owners:
// aggregates plus the requesting user's own rating, if any.
type StoreForUser struct {
	Store
	AverageRating *float64 `db:"average_rating"`
	UserRating    *int     `db:"user_rating"`
}
