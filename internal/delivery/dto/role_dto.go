package dto

import "time"

// Request DTOs

type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	CreatedBy   *int    `json:"created_by" validate:"omitempty,gte=1"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	UpdatedBy   *int    `json:"updated_by" validate:"omitempty,gte=1"`
	IsActive    *bool   `json:"is_active"`
}

// Response DTOs

// RoleResponse is the public projection of a role. UpdatedBy and UpdatedAt
// are internal fields and never leave the service.
type RoleResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   *int      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}
