package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-saas-backend/internal/delivery/dto"
	"healthcare-saas-backend/internal/domain/entity"
	"healthcare-saas-backend/internal/domain/repository"
	"healthcare-saas-backend/internal/service"
)

// Compile-time checks that the mocks satisfy their contracts
var _ repository.RoleRepository = (*mockRoleRepository)(nil)
var _ service.RoleCache = (*mockRoleCache)(nil)

type mockRoleRepository struct {
	CreateFunc     func(ctx context.Context, role *entity.Role) error
	FindAllFunc    func(ctx context.Context) ([]entity.Role, error)
	FindByIDFunc   func(ctx context.Context, id int) (*entity.Role, error)
	FindByNameFunc func(ctx context.Context, name string) (*entity.Role, error)
	SaveFunc       func(ctx context.Context, role *entity.Role) error

	CreateCalls int
	SaveCalls   int
}

func (m *mockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, role)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *mockRoleRepository) FindAll(ctx context.Context) ([]entity.Role, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *mockRoleRepository) FindByID(ctx context.Context, id int) (*entity.Role, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *mockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, errors.New("FindByNameFunc not implemented in mock")
}

func (m *mockRoleRepository) Save(ctx context.Context, role *entity.Role) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, role)
	}
	return errors.New("SaveFunc not implemented in mock")
}

// mockRoleCache records hits so tests can assert invalidation happened.
type mockRoleCache struct {
	cached          []dto.RoleResponse
	hasCached       bool
	InvalidateCalls int
	SetAllCalls     int
}

func (m *mockRoleCache) GetAll(ctx context.Context) ([]dto.RoleResponse, bool) {
	return m.cached, m.hasCached
}

func (m *mockRoleCache) SetAll(ctx context.Context, roles []dto.RoleResponse) {
	m.SetAllCalls++
	m.cached = roles
	m.hasCached = true
}

func (m *mockRoleCache) Invalidate(ctx context.Context) {
	m.InvalidateCalls++
	m.cached = nil
	m.hasCached = false
}

func testRole(id int, name string, active bool) *entity.Role {
	return &entity.Role{
		ID:        id,
		Name:      name,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		IsActive:  &active,
	}
}
