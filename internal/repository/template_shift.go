package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateShiftRepository handles database operations for weekly templates
type TemplateShiftRepository struct {
	db *gorm.DB
}

// NewTemplateShiftRepository creates a new template shift repository
func NewTemplateShiftRepository(db *gorm.DB) *TemplateShiftRepository {
	return &TemplateShiftRepository{db: db}
}

// Create creates a new template shift
func (r *TemplateShiftRepository) Create(template *models.TemplateShift) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a template shift by ID
func (r *TemplateShiftRepository) GetByID(id uuid.UUID) (*models.TemplateShift, error) {
	var template models.TemplateShift
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetAll retrieves all template shifts ordered by weekday and start time
func (r *TemplateShiftRepository) GetAll() ([]models.TemplateShift, error) {
	var templates []models.TemplateShift
	err := r.db.Order("weekday ASC, start_time ASC").Find(&templates).Error
	return templates, err
}

// GetByRoleID retrieves the weekly pattern for one role
func (r *TemplateShiftRepository) GetByRoleID(roleID uuid.UUID) ([]models.TemplateShift, error) {
	var templates []models.TemplateShift
	err := r.db.Where("role_id = ?", roleID).Order("weekday ASC, start_time ASC").Find(&templates).Error
	return templates, err
}

// GetByWeekday retrieves all templates for one weekday across roles
func (r *TemplateShiftRepository) GetByWeekday(weekday int) ([]models.TemplateShift, error) {
	var templates []models.TemplateShift
	err := r.db.Where("weekday = ?", weekday).Order("start_time ASC").Find(&templates).Error
	return templates, err
}

// GetByWeekdayAndRole retrieves the templates feeding one publish day
func (r *TemplateShiftRepository) GetByWeekdayAndRole(weekday int, roleID uuid.UUID) ([]models.TemplateShift, error) {
	var templates []models.TemplateShift
	err := r.db.Where("weekday = ? AND role_id = ?", weekday, roleID).Order("start_time ASC").Find(&templates).Error
	return templates, err
}

// FindMatchingSlot finds the template slot with the given role, weekday and
// time window. Used by the explicit propagate-to-template step after a total
// acceptance.
func (r *TemplateShiftRepository) FindMatchingSlot(roleID uuid.UUID, weekday int, start, end models.TimeOfDay) (*models.TemplateShift, error) {
	var template models.TemplateShift
	err := r.db.First(&template,
		"role_id = ? AND weekday = ? AND start_time = ? AND end_time = ?",
		roleID, weekday, start, end).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// Update updates a template shift
func (r *TemplateShiftRepository) Update(template *models.TemplateShift) error {
	return r.db.Save(template).Error
}

// Delete deletes a template shift
func (r *TemplateShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TemplateShift{}, "id = ?", id).Error
}
