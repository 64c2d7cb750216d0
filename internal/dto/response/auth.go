package response

import (
	"time"

	"brook-rent/internal/data/entity"
)

// UserResponse never carries the password hash or any token column.
type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone_number,omitempty"`
	Role      entity.UserRole `json:"user_type"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// VerifyResponse echoes the identity decoded from a valid bearer token.
type VerifyResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
