package models

// CreateAdminRequest represents the request body for creating a new admin account.
type CreateAdminRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required"`
}
