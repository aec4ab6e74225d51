package dto

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// LoginRequest represents request to authenticate with email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents request to create a new account
type SignupRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	UserType    domain.UserType `json:"user_type" binding:"required,oneof=operator sponsor"`
	CompanyName string          `json:"company_name" binding:"required,min=2,max=255"`
	Phone       string          `json:"phone" binding:"omitempty,max=32"`
}

// UpdateProfileRequest represents request to update profile fields.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	CompanyName    *string         `json:"company_name" binding:"omitempty,min=2,max=255"`
	CompanyLogoURL *string         `json:"company_logo_url" binding:"omitempty,url"`
	Phone          *string         `json:"phone" binding:"omitempty,max=32"`
	Address        *domain.Address `json:"address" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if r.CompanyName == nil && r.CompanyLogoURL == nil && r.Phone == nil && r.Address == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}
