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

// CourseTypeService handles the course catalog
type CourseTypeService struct {
	courseRepo repository.CourseTypeRepositoryInterface
	validator  *validator.Validate
}

// NewCourseTypeService creates a new course type service
func NewCourseTypeService(courseRepo repository.CourseTypeRepositoryInterface, validator *validator.Validate) *CourseTypeService {
	return &CourseTypeService{courseRepo: courseRepo, validator: validator}
}

// CourseTypeRequest represents a course type create or update
type CourseTypeRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	DefaultMinutes int    `json:"default_minutes" validate:"omitempty,min=0,max=1440"`
}

// CreateCourseType creates a new course type
func (s *CourseTypeService) CreateCourseType(req *CourseTypeRequest) (*models.CourseType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	course := &models.CourseType{Name: req.Name, DefaultMinutes: req.DefaultMinutes}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("create course type: %w", err)
	}
	return course, nil
}

// GetCourseType retrieves a course type by ID
func (s *CourseTypeService) GetCourseType(id uuid.UUID) (*models.CourseType, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseTypeNotFound
		}
		return nil, fmt.Errorf("load course type: %w", err)
	}
	return course, nil
}

// ListCourseTypes retrieves the whole catalog
func (s *CourseTypeService) ListCourseTypes() ([]models.CourseType, error) {
	return s.courseRepo.GetAll()
}

// UpdateCourseType updates a course type
func (s *CourseTypeService) UpdateCourseType(id uuid.UUID, req *CourseTypeRequest) (*models.CourseType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	course, err := s.GetCourseType(id)
	if err != nil {
		return nil, err
	}
	course.Name = req.Name
	course.DefaultMinutes = req.DefaultMinutes
	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("update course type: %w", err)
	}
	return course, nil
}

// DeleteCourseType deletes a course type; shifts referencing it keep running
// with the reference cleared.
func (s *CourseTypeService) DeleteCourseType(id uuid.UUID) error {
	if _, err := s.GetCourseType(id); err != nil {
		return err
	}
	return s.courseRepo.Delete(id)
}
