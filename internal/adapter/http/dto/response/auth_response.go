package response

import (
	"time"

	"estimaflow/internal/domain/entities"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) LoginResponse {
	return LoginResponse{Token: s.Token, TokenType: "Bearer", ExpiresAt: s.ExpiresAt}
}
