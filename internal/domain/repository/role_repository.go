package repository

import (
	"context"

	"healthcare-saas-backend/internal/domain/entity"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindAll(ctx context.Context) ([]entity.Role, error)
	FindByID(ctx context.Context, id int) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	Save(ctx context.Context, role *entity.Role) error
}
