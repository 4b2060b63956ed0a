package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthcare-saas-backend/internal/delivery/dto"
	"healthcare-saas-backend/internal/usecase"
	"healthcare-saas-backend/pkg/apierror"
	"healthcare-saas-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type RoleHandler struct {
	roleUsecase usecase.RoleUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	wrap("Role created successfully", h.create)(w, r)
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	wrap("Roles fetched successfully", h.list)(w, r)
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	wrap("Role fetched successfully", h.get)(w, r)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	wrap("Role updated successfully", h.update)(w, r)
}

func (h *RoleHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	wrap("Role status updated successfully", h.toggleStatus)(w, r)
}

func (h *RoleHandler) create(r *http.Request) (interface{}, error) {
	var req dto.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, validator.DecodeError(err)
	}

	if err := h.validator.Validate(&req); err != nil {
		return nil, err
	}

	return h.roleUsecase.Create(r.Context(), &req)
}

func (h *RoleHandler) list(r *http.Request) (interface{}, error) {
	return h.roleUsecase.List(r.Context())
}

func (h *RoleHandler) get(r *http.Request) (interface{}, error) {
	roleID, err := roleIDFromPath(r)
	if err != nil {
		return nil, err
	}

	return h.roleUsecase.Get(r.Context(), roleID)
}

func (h *RoleHandler) update(r *http.Request) (interface{}, error) {
	roleID, err := roleIDFromPath(r)
	if err != nil {
		return nil, err
	}

	var req dto.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, validator.DecodeError(err)
	}

	if err := h.validator.Validate(&req); err != nil {
		return nil, err
	}

	return h.roleUsecase.Update(r.Context(), roleID, &req)
}

func (h *RoleHandler) toggleStatus(r *http.Request) (interface{}, error) {
	roleID, err := roleIDFromPath(r)
	if err != nil {
		return nil, err
	}

	return h.roleUsecase.ToggleStatus(r.Context(), roleID)
}

func roleIDFromPath(r *http.Request) (int, error) {
	roleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, apierror.BadRequest("Invalid role ID")
	}
	return roleID, nil
}
