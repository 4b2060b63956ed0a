package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthcare-saas-backend/internal/converter"
	"healthcare-saas-backend/internal/delivery/dto"
	"healthcare-saas-backend/internal/delivery/http/middleware"
	"healthcare-saas-backend/internal/domain/entity"
	"healthcare-saas-backend/internal/domain/repository"
	"healthcare-saas-backend/internal/service"
	"healthcare-saas-backend/pkg/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

type RoleUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	List(ctx context.Context) ([]dto.RoleResponse, error)
	Get(ctx context.Context, roleID int) (*dto.RoleResponse, error)
	Update(ctx context.Context, roleID int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	ToggleStatus(ctx context.Context, roleID int) (*dto.RoleResponse, error)
}

type roleUsecase struct {
	log      *logrus.Logger
	roleRepo repository.RoleRepository
	cache    service.RoleCache
}

func NewRoleUsecase(log *logrus.Logger, roleRepo repository.RoleRepository, cache service.RoleCache) RoleUsecase {
	return &roleUsecase{
		log:      log,
		roleRepo: roleRepo,
		cache:    cache,
	}
}

func roleExistsRejection(name string) error {
	return apierror.BadRequest(fmt.Sprintf("Role '%s' already exists", name))
}

// Create inserts a new role after a case-sensitive uniqueness check. The
// check-then-insert sequence has a race window under concurrent creates,
// the unique constraint on roles.name is the backstop: a duplicate-key
// failure during insert is re-classified as the same rejection.
func (u *roleUsecase) Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	existing, err := u.roleRepo.FindByName(ctx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to look up role by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, roleExistsRejection(req.Name)
	}

	actorID, _ := middleware.GetActorIDFromContext(ctx)
	role := &entity.Role{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   &actorID,
	}

	if err := u.roleRepo.Create(ctx, role); err != nil {
		if isUniqueViolation(err, "name") {
			return nil, roleExistsRejection(req.Name)
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	return converter.RoleToResponse(role), nil
}

// List returns all roles, active or not. No pagination, no filtering.
func (u *roleUsecase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	if cached, ok := u.cache.GetAll(ctx); ok {
		return cached, nil
	}

	roles, err := u.roleRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}

	responses := converter.RolesToResponses(roles)
	u.cache.SetAll(ctx, responses)

	return responses, nil
}

// Get returns the role's public projection, or nil when no row matches.
func (u *roleUsecase) Get(ctx context.Context, roleID int) (*dto.RoleResponse, error) {
	role, err := u.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	return converter.RoleToResponse(role), nil
}

// Update applies only the fields present in the request, stamps updated_by,
// and returns nil when the id is unknown.
func (u *roleUsecase) Update(ctx context.Context, roleID int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := u.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}
	if req.IsActive != nil {
		role.IsActive = req.IsActive
	}

	actorID, _ := middleware.GetActorIDFromContext(ctx)
	role.UpdatedBy = &actorID

	if err := u.roleRepo.Save(ctx, role); err != nil {
		if isUniqueViolation(err, "name") {
			return nil, roleExistsRejection(role.Name)
		}
		u.log.Warnf("Failed to update role: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	return converter.RoleToResponse(role), nil
}

// ToggleStatus flips is_active to its complement, the soft-delete
// convention for roles. Returns nil when the id is unknown.
func (u *roleUsecase) ToggleStatus(ctx context.Context, roleID int) (*dto.RoleResponse, error) {
	role, err := u.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	flipped := !(role.IsActive != nil && *role.IsActive)
	role.IsActive = &flipped

	actorID, _ := middleware.GetActorIDFromContext(ctx)
	role.UpdatedBy = &actorID

	if err := u.roleRepo.Save(ctx, role); err != nil {
		u.log.Warnf("Failed to toggle role status: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	return converter.RoleToResponse(role), nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
