package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type StoreWithStatsResponse struct {
	StoreResponse
	AverageRating *float64 `json:"average_rating"`
	TotalRatings  int64    `json:"total_ratings"`
	OwnerName     *string  `json:"owner_name,omitempty"`
}

type StoreForUserResponse struct {
	StoreResponse
	AverageRating *float64 `json:"average_rating"`
	UserRating    *int     `json:"user_rating,omitempty"`
}

func StoreToResponse(store *entity.Store) StoreResponse {
	resp := StoreResponse{
		ID:        store.ID.String(),
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		CreatedAt: store.CreatedAt,
	}

	if store.OwnerID != nil {
		ownerID := store.OwnerID.String()
		resp.OwnerID = &ownerID
	}

	return resp
}

func StoreWithStatsToResponse(store *entity.StoreWithStats) StoreWithStatsResponse {
	return StoreWithStatsResponse{
		StoreResponse: StoreToResponse(&store.Store),
		AverageRating: store.AverageRating,
		TotalRatings:  store.TotalRatings,
		OwnerName:     store.OwnerName,
	}
}

func StoreForUserToResponse(store *entity.StoreForUser) StoreForUserResponse {
	return StoreForUserResponse{
		StoreResponse: StoreToResponse(&store.Store),
		AverageRating: store.AverageRating,
		UserRating:    store.UserRating,
	}
}
