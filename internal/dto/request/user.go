package request

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=20,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=16,password"`
	Role     string  `json:"role" validate:"required,oneof=admin normal_user store_owner"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=400"`
}

// ListUsersQuery carries the admin listing query parameters. Filters are
// optional substrings; sortBy is resolved against an allow-list downstream.
type ListUsersQuery struct {
	Name    string
	Email   string
	Address string
	Role    string
	SortBy  string
	Order   string
}
