package entity

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleNormalUser UserRole = "normal_user"
	RoleStoreOwner UserRole = "store_owner"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Address      *string  `db:"address"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
