package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseTypeRepository handles database operations for course types
type CourseTypeRepository struct {
	db *gorm.DB
}

// NewCourseTypeRepository creates a new course type repository
func NewCourseTypeRepository(db *gorm.DB) *CourseTypeRepository {
	return &CourseTypeRepository{db: db}
}

// Create creates a new course type
func (r *CourseTypeRepository) Create(courseType *models.CourseType) error {
	return r.db.Create(courseType).Error
}

// GetByID retrieves a course type by ID
func (r *CourseTypeRepository) GetByID(id uuid.UUID) (*models.CourseType, error) {
	var courseType models.CourseType
	err := r.db.First(&courseType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &courseType, nil
}

// GetAll retrieves all course types ordered by name
func (r *CourseTypeRepository) GetAll() ([]models.CourseType, error) {
	var courseTypes []models.CourseType
	err := r.db.Order("name ASC").Find(&courseTypes).Error
	return courseTypes, err
}

// Update updates a course type
func (r *CourseTypeRepository) Update(courseType *models.CourseType) error {
	return r.db.Save(courseType).Error
}

// Delete deletes a course type
func (r *CourseTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CourseType{}, "id = ?", id).Error
}
