package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByCode retrieves a role by its unique code
func (r *RoleRepository) GetByCode(code string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all roles ordered by code
func (r *RoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("code ASC").Find(&roles).Error
	return roles, err
}

// Update updates a role
func (r *RoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

// Delete deletes a role
func (r *RoleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Role{}, "id = ?", id).Error
}

// InUse reports whether any shift or template references the role. Roles in
// use are immutable.
func (r *RoleRepository) InUse(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Shift{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.Model(&models.TemplateShift{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
