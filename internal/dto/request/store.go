package request

type CreateStoreRequest struct {
	Name    string  `json:"name" validate:"required,min=3,max=60"`
	Email   string  `json:"email" validate:"required,email"`
	Address string  `json:"address" validate:"required,max=400"`
	OwnerID *string `json:"owner_id,omitempty" validate:"omitempty,uuid4"`
}

// ListStoresQuery carries the admin listing query parameters.
type ListStoresQuery struct {
	Name    string
	Email   string
	Address string
	SortBy  string
	Order   string
}

// UserStoresQuery carries the normal-user/owner listing query parameters.
type UserStoresQuery struct {
	Search    string
	OwnerOnly bool
	SortBy    string
	Order     string
}
