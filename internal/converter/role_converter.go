package converter

import (
	"healthcare-saas-backend/internal/delivery/dto"
	"healthcare-saas-backend/internal/domain/entity"
)

// RoleToResponse converts a Role entity to its public projection
func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}

	isActive := role.IsActive != nil && *role.IsActive

	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedBy:   role.CreatedBy,
		CreatedAt:   role.CreatedAt,
		IsActive:    isActive,
	}
}

// RolesToResponses converts a slice of Role entities to public projections
func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *RoleToResponse(&roles[i])
	}
	return responses
}
