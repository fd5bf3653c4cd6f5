package dto

import "github.com/yigit/schoolhub/internal/app/models"

// AdminRequest represents admin creation data
type AdminRequest struct {
	Name     string `json:"name" binding:"notblank" label:"Name" example:"Ada Admin"`
	Email    string `json:"email" binding:"notblank,email" label:"Email" example:"ada@school.edu"`
	Password string `json:"password" binding:"notblank,min=6" label:"Password" example:"secret123"`
}

// AdminUpdateRequest represents admin update data. An empty password keeps the current one.
type AdminUpdateRequest struct {
	Name     string `json:"name" binding:"notblank" label:"Name"`
	Email    string `json:"email" binding:"notblank,email" label:"Email"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6" label:"Password"`
}

// AdminResponse is the public projection of an admin
type AdminResponse struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Ada Admin"`
	Email string `json:"email" example:"ada@school.edu"`
}

// NewAdminResponse converts a model to its response
func NewAdminResponse(admin *models.Admin) AdminResponse {
	return AdminResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	}
}
