package service

import (
	"errors"
	"fmt"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles role management
type RoleService struct {
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{roleRepo: roleRepo, validator: validator}
}

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Code  string `json:"code" validate:"required,min=2,max=50"`
	Label string `json:"label" validate:"required,max=100"`
}

// UpdateRoleRequest represents the request to update a role's label
type UpdateRoleRequest struct {
	Label string `json:"label" validate:"required,max=100"`
}

// CreateRole creates a new role
func (s *RoleService) CreateRole(req *CreateRoleRequest) (*models.Role, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role := &models.Role{Code: req.Code, Label: req.Label}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// GetRole retrieves a role by ID
func (s *RoleService) GetRole(id uuid.UUID) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}
	return role, nil
}

// ListRoles retrieves all roles
func (s *RoleService) ListRoles() ([]models.Role, error) {
	return s.roleRepo.GetAll()
}

// UpdateRole updates a role's label. The code is immutable: shifts and
// templates reference it.
func (s *RoleService) UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*models.Role, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := s.GetRole(id)
	if err != nil {
		return nil, err
	}
	role.Label = req.Label
	if err := s.roleRepo.Update(role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

// DeleteRole deletes a role unless shifts or templates still reference it
func (s *RoleService) DeleteRole(id uuid.UUID) error {
	if _, err := s.GetRole(id); err != nil {
		return err
	}
	inUse, err := s.roleRepo.InUse(id)
	if err != nil {
		return fmt.Errorf("check role usage: %w", err)
	}
	if inUse {
		return apperrors.NewConflictError("role is referenced by shifts or templates")
	}
	return s.roleRepo.Delete(id)
}
