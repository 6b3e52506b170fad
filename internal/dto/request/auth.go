package request

type SignupRequest struct {
	Name     string  `json:"name" validate:"required,min=20,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=400"`
	Password string  `json:"password" validate:"required,min=8,max=16,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=16,password"`
}
