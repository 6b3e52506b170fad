package usecase

import "errors"

// Sentinel errors the handlers translate into HTTP status codes. Anything
// else coming out of a service is an unexpected failure (500).
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrStoreEmailTaken     = errors.New("store email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrStoreNotFound       = errors.New("store not found")
	ErrRatingNotFound      = errors.New("no rating found")
	ErrOldPasswordMismatch = errors.New("old password is incorrect")
	ErrNotStoreOwner       = errors.New("you are not the owner of this store")
	ErrInvalidOwner        = errors.New("owner must be an existing user with the store_owner role")
)
