package response_models

import (
	"time"

	"github.com/google/uuid"

	"courtside/internal/models/db_models"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsClubOwner bool      `json:"is_club_owner"`
	Badges      []string  `json:"badges"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		IsClubOwner: user.IsClubOwner,
		Badges:      append([]string{}, user.Badges...),
		CreatedAt:   user.CreatedAt,
	}
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Redirect    string       `json:"redirect,omitempty"`
}
