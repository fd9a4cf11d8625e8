package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService serves the calendar views and the shift CRUD surface.
type ShiftService struct {
	shiftRepo   repository.ShiftRepositoryInterface
	requestRepo repository.ReplacementRequestRepositoryInterface
	roleRepo    repository.RoleRepositoryInterface
	weekRepo    repository.PublishedWeekRepositoryInterface
	users       UserDirectory
	courses     CourseCatalog
	validator   *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(
	shiftRepo repository.ShiftRepositoryInterface,
	requestRepo repository.ReplacementRequestRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	weekRepo repository.PublishedWeekRepositoryInterface,
	users UserDirectory,
	courses CourseCatalog,
	validator *validator.Validate,
) *ShiftService {
	return &ShiftService{
		shiftRepo:   shiftRepo,
		requestRepo: requestRepo,
		roleRepo:    roleRepo,
		weekRepo:    weekRepo,
		users:       users,
		courses:     courses,
		validator:   validator,
	}
}

// ReplacementSummary is the latest accepted substitution on a shift, for
// calendar annotation.
type ReplacementSummary struct {
	RequesterName string            `json:"requester_name"`
	TargetName    string            `json:"target_name"`
	Partial       bool              `json:"partial"`
	PartialStart  *models.TimeOfDay `json:"partial_start,omitempty"`
	PartialEnd    *models.TimeOfDay `json:"partial_end,omitempty"`
}

// ShiftView is one calendar entry.
type ShiftView struct {
	ID          uuid.UUID           `json:"id"`
	Date        string              `json:"date"`
	StartTime   models.TimeOfDay    `json:"start_time"`
	EndTime     models.TimeOfDay    `json:"end_time"`
	UserID      uuid.UUID           `json:"user_id"`
	UserName    string              `json:"user_name"`
	RoleCode    string              `json:"role"`
	CourseName  string              `json:"course_name,omitempty"`
	Approved    bool                `json:"approved"`
	Origin      models.ShiftOrigin  `json:"origin"`
	Replacement *ReplacementSummary `json:"replacement,omitempty"`
}

// CreateShiftRequest represents a manual shift creation
type CreateShiftRequest struct {
	UserID       uuid.UUID         `json:"user_id" validate:"required"`
	RoleCode     string            `json:"role" validate:"required"`
	Date         string            `json:"date" validate:"required"`
	StartTime    models.TimeOfDay  `json:"start_time" validate:"required"`
	EndTime      models.TimeOfDay  `json:"end_time" validate:"required"`
	CourseTypeID *uuid.UUID        `json:"course_type_id,omitempty"`
}

// UpdateShiftRequest represents a shift update; nil fields are left unchanged
type UpdateShiftRequest struct {
	StartTime    *models.TimeOfDay `json:"start_time,omitempty"`
	EndTime      *models.TimeOfDay `json:"end_time,omitempty"`
	CourseTypeID *uuid.UUID        `json:"course_type_id,omitempty"`
	Approved     *bool             `json:"approved,omitempty"`
}

// CreateShift creates a shift outside the publish flow.
func (s *ShiftService) CreateShift(req *CreateShiftRequest) (*models.Shift, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.StartTime.Valid() || !req.EndTime.Valid() || !req.StartTime.Before(req.EndTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}
	role, err := s.roleRepo.GetByCode(req.RoleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}
	if _, err := s.users.GetByID(req.UserID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if req.CourseTypeID != nil {
		if _, err := s.courses.GetByID(*req.CourseTypeID); err != nil {
			return nil, apperrors.ErrCourseTypeNotFound
		}
	}

	shift := &models.Shift{
		UserID:       req.UserID,
		RoleID:       role.ID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CourseTypeID: req.CourseTypeID,
		Origin:       models.ShiftOriginTemplate,
	}
	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return shift, nil
}

// GetShift retrieves a single shift by ID.
func (s *ShiftService) GetShift(id uuid.UUID) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}
	return shift, nil
}

// UpdateShift applies a partial update to a shift.
func (s *ShiftService) UpdateShift(id uuid.UUID, req *UpdateShiftRequest) (*models.Shift, error) {
	shift, err := s.GetShift(id)
	if err != nil {
		return nil, err
	}
	if req.StartTime != nil {
		if !req.StartTime.Valid() {
			return nil, apperrors.ErrInvalidTimeRange
		}
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !req.EndTime.Valid() {
			return nil, apperrors.ErrInvalidTimeRange
		}
		shift.EndTime = *req.EndTime
	}
	if !shift.StartTime.Before(shift.EndTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if req.CourseTypeID != nil {
		if _, err := s.courses.GetByID(*req.CourseTypeID); err != nil {
			return nil, apperrors.ErrCourseTypeNotFound
		}
		shift.CourseTypeID = req.CourseTypeID
	}
	if req.Approved != nil {
		shift.Approved = *req.Approved
	}
	if err := s.shiftRepo.Update(shift); err != nil {
		return nil, fmt.Errorf("update shift: %w", err)
	}
	return shift, nil
}

// DeleteShift removes a shift.
func (s *ShiftService) DeleteShift(id uuid.UUID) error {
	if _, err := s.GetShift(id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(id)
}

// GetWeekShifts returns the seven days starting at the given date, each shift
// annotated with its latest accepted substitution.
func (s *ShiftService) GetWeekShifts(start string) ([]ShiftView, error) {
	day, err := parseDate(start)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}
	shifts, err := s.shiftRepo.GetByDateRange(day, day.AddDate(0, 0, 6))
	if err != nil {
		return nil, fmt.Errorf("load week shifts: %w", err)
	}
	return s.annotate(shifts)
}

// GetMonthShifts returns all shifts in a month as calendar entries.
func (s *ShiftService) GetMonthShifts(year, month int) ([]ShiftView, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "must be between 1 and 12")
	}
	shifts, err := s.shiftRepo.GetByMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("load month shifts: %w", err)
	}
	return s.annotate(shifts)
}

func (s *ShiftService) annotate(shifts []models.Shift) ([]ShiftView, error) {
	ids := make([]uuid.UUID, 0, len(shifts))
	for _, sh := range shifts {
		ids = append(ids, sh.ID)
	}
	accepted, err := s.requestRepo.GetAcceptedByShiftIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load accepted requests: %w", err)
	}
	// Rows arrive newest first; the first one seen per shift wins.
	latest := make(map[uuid.UUID]*models.ReplacementRequest, len(accepted))
	for i := range accepted {
		r := &accepted[i]
		if _, ok := latest[r.ShiftID]; !ok {
			latest[r.ShiftID] = r
		}
	}

	views := make([]ShiftView, 0, len(shifts))
	for i := range shifts {
		sh := &shifts[i]
		view := ShiftView{
			ID:        sh.ID,
			Date:      dateOnly(sh.Date),
			StartTime: sh.StartTime,
			EndTime:   sh.EndTime,
			UserID:    sh.UserID,
			UserName:  sh.User.FullName(),
			RoleCode:  sh.Role.Code,
			Approved:  sh.Approved,
			Origin:    sh.Origin,
		}
		if sh.CourseType != nil {
			view.CourseName = sh.CourseType.Name
		}
		if r, ok := latest[sh.ID]; ok {
			view.Replacement = &ReplacementSummary{
				RequesterName: r.Requester.FullName(),
				TargetName:    r.TargetUser.FullName(),
				Partial:       r.Partial,
				PartialStart:  r.PartialStart,
				PartialEnd:    r.PartialEnd,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// AvailableCollaborators lists users holding the shift's role, excluding the
// current holder, as candidate substitution targets.
func (s *ShiftService) AvailableCollaborators(shiftID uuid.UUID) ([]models.User, error) {
	shift, err := s.GetShift(shiftID)
	if err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByID(shift.RoleID)
	if err != nil {
		return nil, fmt.Errorf("load role: %w", err)
	}
	candidates, err := s.users.GetByRoleCode(role.Code)
	if err != nil {
		return nil, fmt.Errorf("load collaborators: %w", err)
	}
	out := make([]models.User, 0, len(candidates))
	for _, u := range candidates {
		if u.ID == shift.UserID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// GetPublishedWeeks returns the Monday dates published for a role across the
// given month, padded a week on each side so the calendar can shade partial
// weeks at the month edges.
func (s *ShiftService) GetPublishedWeeks(roleCode string, year, month int) ([]string, error) {
	role, err := s.roleRepo.GetByCode(roleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	weeks, err := s.weekRepo.GetByRoleAndRange(role.ID, first.AddDate(0, 0, -7), last.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("load published weeks: %w", err)
	}
	out := make([]string, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, dateOnly(w.StartDate))
	}
	return out, nil
}
