package handler

import (
	"time"

	"github.com/notewise/notes-api/internal/core/domain"
)

// messageResponse is the standard envelope returned on all 4xx/5xx responses.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	UserName  string `json:"user_name"  validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password"   validate:"required"`
}

type loginRequest struct {
	UserEmail string `json:"user_email" validate:"required"`
	Password  string `json:"password"   validate:"required"`
}

// userResponse is the sanitized user projection: the password hash is never
// part of the external contract, and timestamps are rendered as RFC 3339 UTC.
type userResponse struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	CreatedOn  string `json:"created_on"`
	LastUpdate string `json:"last_update"`
}

type authResponse struct {
	Message     string        `json:"message"`
	AccessToken string        `json:"access_token,omitempty"`
	TokenType   string        `json:"token_type,omitempty"`
	Warning     string        `json:"warning,omitempty"`
	User        *userResponse `json:"user"`
}

func toUserResponse(u *domain.User) *userResponse {
	return &userResponse{
		UserID:     u.UserID,
		UserName:   u.UserName,
		UserEmail:  u.UserEmail,
		CreatedOn:  u.CreatedOn.UTC().Format(time.RFC3339),
		LastUpdate: u.LastUpdate.UTC().Format(time.RFC3339),
	}
}
