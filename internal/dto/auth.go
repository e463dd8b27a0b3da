package dto

import "github.com/triomphant75/Gestion-Absence/internal/model"

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email      string `json:"email"        binding:"required,email"`
	MotDePasse string `json:"mot_de_passe" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"` // seconds
	User         *model.User `json:"user"`
}
