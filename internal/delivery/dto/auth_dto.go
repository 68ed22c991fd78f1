package dto

import "github.com/google/uuid"

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"omitempty,max=120"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	Msg    string    `json:"msg"`
	UserID uuid.UUID `json:"user_id"`
}

// UserSummary is the minimal identity block returned on login and /me.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Phone string    `json:"phone"`
	Name  string    `json:"name"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}
