package entity

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Rating  int       `db:"rating"`
}

// StoreRater is one rating of a store together with who submitted it.
// Returned to the store's owner.
type StoreRater struct {
	UserID    uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

// RatingDetail is a rating joined with user and store identity, for the
// admin listing.
type RatingDetail struct {
	Rating
	UserName   string `db:"user_name"`
	UserEmail  string `db:"user_email"`
	StoreName  string `db:"store_name"`
	StoreEmail string `db:"store_email"`
}
