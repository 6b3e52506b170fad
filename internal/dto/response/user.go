package response

import (
	"time"

	"store-ratings/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Address   *string         `json:"address,omitempty"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`

	// Mean rating across owned stores; present only for store owners.
	AverageRating *float64 `json:"average_rating,omitempty"`
}

type DashboardResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
