package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StoreRaterResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreRatingsResponse is the owner's view: every rating with the rater's
// identity plus the aggregate.
type StoreRatingsResponse struct {
	Ratings       []StoreRaterResponse `json:"ratings"`
	AverageRating *float64             `json:"average_rating"`
}

type RatingDetailResponse struct {
	RatingResponse
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	StoreName  string `json:"store_name"`
	StoreEmail string `json:"store_email"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		StoreID:   rating.StoreID.String(),
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func StoreRaterToResponse(rater *entity.StoreRater) StoreRaterResponse {
	return StoreRaterResponse{
		UserID:    rater.UserID.String(),
		Name:      rater.Name,
		Email:     rater.Email,
		Rating:    rater.Rating,
		CreatedAt: rater.CreatedAt,
	}
}

func RatingDetailToResponse(detail *entity.RatingDetail) RatingDetailResponse {
	return RatingDetailResponse{
		RatingResponse: RatingToResponse(&detail.Rating),
		UserName:       detail.UserName,
		UserEmail:      detail.UserEmail,
		StoreName:      detail.StoreName,
		StoreEmail:     detail.StoreEmail,
	}
}
