package dto

import "github.com/yigit/schoolhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"notblank,email" label:"Email" example:"admin@school.edu"`
	Password string `json:"password" binding:"notblank" label:"Password" example:"secret123"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType" example:"Bearer"`
	ExpiresIn int64       `json:"expiresIn" example:"86400"`
	Role      models.Role `json:"role" example:"ADMIN" enums:"ADMIN,TEACHER"`
}
