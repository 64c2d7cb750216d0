package entity

import "time"

type UserRole string

const (
	RoleLister UserRole = "lister"
	RoleRenter UserRole = "renter"
)

// ValidRole reports whether s is one of the two allowed account types.
func ValidRole(s string) bool {
	return s == string(RoleLister) || s == string(RoleRenter)
}

// User is a credential-store row. ResetToken and ResetTokenExpiry are
// always written together: both null or both set.
type User struct {
	ID               int64      `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password"`
	Phone            *string    `db:"phone_number"`
	Role             UserRole   `db:"user_type"`
	RememberToken    *string    `db:"remember_token"`
	ResetToken       *string    `db:"reset_token"`
	ResetTokenExpiry *time.Time `db:"reset_token_expiry"`
	CreatedAt        time.Time  `db:"created_at"`
}
