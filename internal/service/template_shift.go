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

// TemplateShiftService manages the weekly template catalog the publisher
// materializes from.
type TemplateShiftService struct {
	templateRepo repository.TemplateShiftRepositoryInterface
	roleRepo     repository.RoleRepositoryInterface
	users        UserDirectory
	courses      CourseCatalog
	validator    *validator.Validate
}

// NewTemplateShiftService creates a new template shift service
func NewTemplateShiftService(
	templateRepo repository.TemplateShiftRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	users UserDirectory,
	courses CourseCatalog,
	validator *validator.Validate,
) *TemplateShiftService {
	return &TemplateShiftService{
		templateRepo: templateRepo,
		roleRepo:     roleRepo,
		users:        users,
		courses:      courses,
		validator:    validator,
	}
}

// TemplateShiftRequest represents a template slot create or update. Weekday
// runs 0=Monday through 6=Sunday. UserID may be nil for an unassigned slot.
type TemplateShiftRequest struct {
	RoleCode     string           `json:"role" validate:"required"`
	Weekday      int              `json:"weekday" validate:"min=0,max=6"`
	StartTime    models.TimeOfDay `json:"start_time" validate:"required"`
	EndTime      models.TimeOfDay `json:"end_time" validate:"required"`
	UserID       *uuid.UUID       `json:"user_id,omitempty"`
	CourseTypeID *uuid.UUID       `json:"course_type_id,omitempty"`
}

func (s *TemplateShiftService) resolve(req *TemplateShiftRequest) (*models.Role, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.StartTime.Valid() || !req.EndTime.Valid() || !req.StartTime.Before(req.EndTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	role, err := s.roleRepo.GetByCode(req.RoleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}
	if req.UserID != nil {
		if _, err := s.users.GetByID(*req.UserID); err != nil {
			return nil, apperrors.ErrUserNotFound
		}
	}
	if req.CourseTypeID != nil {
		if _, err := s.courses.GetByID(*req.CourseTypeID); err != nil {
			return nil, apperrors.ErrCourseTypeNotFound
		}
	}
	return role, nil
}

// CreateTemplateShift creates a template slot
func (s *TemplateShiftService) CreateTemplateShift(req *TemplateShiftRequest) (*models.TemplateShift, error) {
	role, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	tpl := &models.TemplateShift{
		RoleID:       role.ID,
		Weekday:      req.Weekday,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UserID:       req.UserID,
		CourseTypeID: req.CourseTypeID,
	}
	if err := s.templateRepo.Create(tpl); err != nil {
		return nil, fmt.Errorf("create template shift: %w", err)
	}
	return tpl, nil
}

// GetTemplateShift retrieves a template slot by ID
func (s *TemplateShiftService) GetTemplateShift(id uuid.UUID) (*models.TemplateShift, error) {
	tpl, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateShiftNotFound
		}
		return nil, fmt.Errorf("load template shift: %w", err)
	}
	return tpl, nil
}

// ListTemplateShifts retrieves the catalog, optionally filtered by role code
func (s *TemplateShiftService) ListTemplateShifts(roleCode string) ([]models.TemplateShift, error) {
	if roleCode == "" {
		return s.templateRepo.GetAll()
	}
	role, err := s.roleRepo.GetByCode(roleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}
	return s.templateRepo.GetByRoleID(role.ID)
}

// UpdateTemplateShift replaces a template slot's contents
func (s *TemplateShiftService) UpdateTemplateShift(id uuid.UUID, req *TemplateShiftRequest) (*models.TemplateShift, error) {
	tpl, err := s.GetTemplateShift(id)
	if err != nil {
		return nil, err
	}
	role, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	tpl.RoleID = role.ID
	tpl.Weekday = req.Weekday
	tpl.StartTime = req.StartTime
	tpl.EndTime = req.EndTime
	tpl.UserID = req.UserID
	tpl.CourseTypeID = req.CourseTypeID
	if err := s.templateRepo.Update(tpl); err != nil {
		return nil, fmt.Errorf("update template shift: %w", err)
	}
	return tpl, nil
}

// DeleteTemplateShift removes a template slot. Already published shifts stay;
// the next publish of an affected week deletes them via the diff.
func (s *TemplateShiftService) DeleteTemplateShift(id uuid.UUID) error {
	if _, err := s.GetTemplateShift(id); err != nil {
		return err
	}
	return s.templateRepo.Delete(id)
}
