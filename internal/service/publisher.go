package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublisherService materializes concrete shifts from the weekly template
// catalog and reconciles them against previously published shifts.
type PublisherService struct {
	db           *gorm.DB
	roleRepo     repository.RoleRepositoryInterface
	templateRepo repository.TemplateShiftRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	weekRepo     repository.PublishedWeekRepositoryInterface
	policy       models.OverlapPolicy
	validator    *validator.Validate
}

// NewPublisherService creates a new publisher service
func NewPublisherService(
	db *gorm.DB,
	roleRepo repository.RoleRepositoryInterface,
	templateRepo repository.TemplateShiftRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	weekRepo repository.PublishedWeekRepositoryInterface,
	policy models.OverlapPolicy,
	validator *validator.Validate,
) *PublisherService {
	return &PublisherService{
		db:           db,
		roleRepo:     roleRepo,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		weekRepo:     weekRepo,
		policy:       policy,
		validator:    validator,
	}
}

// WeekRange is one requested publication window; only the start matters after
// Monday normalization.
type WeekRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// PublishWeeksRequest represents the request to publish one or more weeks for a role
type PublishWeeksRequest struct {
	RoleCode string      `json:"role" validate:"required"`
	Weeks    []WeekRange `json:"weeks" validate:"required,min=1,dive"`
}

// PublishResult reports the reconciliation outcome
type PublishResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Deleted int      `json:"deleted"`
	Weeks   []string `json:"weeks"`
}

// GenerateMonthRequest represents the request to generate a whole month
type GenerateMonthRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

// diffKey identifies a desired shift within one role/week window.
type diffKey struct {
	date   string
	userID uuid.UUID
}

// PublishWeeks computes the desired shift set for each requested week from
// the template catalog and reconciles the store against it: create missing
// rows, update changed ones, delete rows no template implies anymore.
// Re-running with an unchanged catalog is a no-op. Shifts the coverage engine
// created or resized are invisible to the diff.
func (s *PublisherService) PublishWeeks(req *PublishWeeksRequest) (*PublishResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Weeks) == 0 {
		return nil, apperrors.ErrEmptyWeekList
	}

	role, err := s.roleRepo.GetByCode(req.RoleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}

	// Parse every start date up front so a malformed week aborts the whole
	// call before anything is written.
	starts := make([]time.Time, 0, len(req.Weeks))
	for _, w := range req.Weeks {
		d, err := parseDate(w.Start)
		if err != nil {
			return nil, apperrors.ErrInvalidDateFormat
		}
		starts = append(starts, d)
	}

	result := &PublishResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		shifts := s.shiftRepo.WithTx(tx)
		weeks := s.weekRepo.WithTx(tx)

		for _, start := range starts {
			weekStart := normalizeWeekStart(start)
			weekEnd := weekStart.AddDate(0, 0, 6)
			result.Weeks = append(result.Weeks,
				fmt.Sprintf("%s -> %s", dateOnly(weekStart), dateOnly(weekEnd)))

			// Concurrent publishes of the same (role, week) key must not
			// interleave: both would see the same missing keys and create
			// duplicates.
			lockKey := fmt.Sprintf("publish:%s:%s", role.Code, dateOnly(weekStart))
			if err := repository.AdvisoryLock(tx, lockKey); err != nil {
				return fmt.Errorf("acquire publish lock: %w", err)
			}

			if err := weeks.Upsert(role.ID, weekStart); err != nil {
				return fmt.Errorf("record published week: %w", err)
			}

			if err := s.reconcileWeek(shifts, role, weekStart, weekEnd, result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"role":    role.Code,
		"created": result.Created,
		"updated": result.Updated,
		"deleted": result.Deleted,
	}).Info("weeks published")
	return result, nil
}

func (s *PublisherService) reconcileWeek(
	shifts repository.ShiftRepositoryInterface,
	role *models.Role,
	weekStart, weekEnd time.Time,
	result *PublishResult,
) error {
	existing, err := shifts.GetTemplateOriginByWeek(role.ID, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("load existing shifts: %w", err)
	}
	existingMap := make(map[diffKey]*models.Shift, len(existing))
	for i := range existing {
		sh := &existing[i]
		existingMap[diffKey{date: dateOnly(sh.Date), userID: sh.UserID}] = sh
	}

	desired := make(map[diffKey]bool)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		templates, err := s.templateRepo.GetByWeekdayAndRole(i, role.ID)
		if err != nil {
			return fmt.Errorf("load templates: %w", err)
		}

		for _, tpl := range templates {
			if tpl.UserID == nil {
				continue
			}
			key := diffKey{date: dateOnly(day), userID: *tpl.UserID}
			desired[key] = true

			if sh, ok := existingMap[key]; ok {
				if sh.StartTime != tpl.StartTime || sh.EndTime != tpl.EndTime ||
					!uuidPtrEqual(sh.CourseTypeID, tpl.CourseTypeID) {
					sh.StartTime = tpl.StartTime
					sh.EndTime = tpl.EndTime
					sh.CourseTypeID = tpl.CourseTypeID
					if err := shifts.Update(sh); err != nil {
						return fmt.Errorf("update shift: %w", err)
					}
					result.Updated++
				}
				continue
			}

			if err := s.checkOverlap(shifts, *tpl.UserID, day, tpl.StartTime, tpl.EndTime); err != nil {
				return err
			}
			created := &models.Shift{
				UserID:       *tpl.UserID,
				RoleID:       role.ID,
				Date:         day,
				StartTime:    tpl.StartTime,
				EndTime:      tpl.EndTime,
				CourseTypeID: tpl.CourseTypeID,
				Approved:     false,
				Origin:       models.ShiftOriginTemplate,
			}
			if err := shifts.Create(created); err != nil {
				return fmt.Errorf("create shift: %w", err)
			}
			result.Created++
		}
	}

	for key, sh := range existingMap {
		if !desired[key] {
			if err := shifts.Delete(sh.ID); err != nil {
				return fmt.Errorf("delete obsolete shift: %w", err)
			}
			result.Deleted++
		}
	}
	return nil
}

// GenerateMonth creates any missing shifts for a whole month across all
// roles, one day at a time. Unlike PublishWeeks it never updates or deletes.
// Returns the number of shifts created.
func (s *PublisherService) GenerateMonth(req *GenerateMonthRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		shifts := s.shiftRepo.WithTx(tx)

		// Two concurrent generations of the same month would both see the
		// same missing keys and create duplicates, so serialize on the month.
		lockKey := fmt.Sprintf("generate:%04d-%02d", req.Year, req.Month)
		if err := repository.AdvisoryLock(tx, lockKey); err != nil {
			return fmt.Errorf("acquire generate lock: %w", err)
		}

		first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		existing, err := shifts.GetByDateRange(first, last)
		if err != nil {
			return fmt.Errorf("load month shifts: %w", err)
		}
		type monthKey struct {
			date   string
			userID uuid.UUID
			roleID uuid.UUID
			start  models.TimeOfDay
			end    models.TimeOfDay
		}
		seen := make(map[monthKey]bool, len(existing))
		for _, sh := range existing {
			seen[monthKey{dateOnly(sh.Date), sh.UserID, sh.RoleID, sh.StartTime, sh.EndTime}] = true
		}

		for day := 1; day <= daysInMonth(req.Year, req.Month); day++ {
			date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
			templates, err := s.templateRepo.GetByWeekday(mondayIndex(date))
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			for _, tpl := range templates {
				if tpl.UserID == nil {
					continue
				}
				key := monthKey{dateOnly(date), *tpl.UserID, tpl.RoleID, tpl.StartTime, tpl.EndTime}
				if seen[key] {
					continue
				}
				seen[key] = true

				if err := s.checkOverlap(shifts, *tpl.UserID, date, tpl.StartTime, tpl.EndTime); err != nil {
					return err
				}
				if err := shifts.Create(&models.Shift{
					UserID:       *tpl.UserID,
					RoleID:       tpl.RoleID,
					Date:         date,
					StartTime:    tpl.StartTime,
					EndTime:      tpl.EndTime,
					CourseTypeID: tpl.CourseTypeID,
					Approved:     false,
					Origin:       models.ShiftOriginTemplate,
				}); err != nil {
					return fmt.Errorf("create shift: %w", err)
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// checkOverlap enforces the configured overlap policy for a row about to be
// created. Under "allow" (the default) a worker may hold concurrent shifts.
func (s *PublisherService) checkOverlap(
	shifts repository.ShiftRepositoryInterface,
	userID uuid.UUID,
	date time.Time,
	start, end models.TimeOfDay,
) error {
	if s.policy != models.OverlapPolicyReject {
		return nil
	}
	overlapping, err := shifts.FindOverlapping(userID, date, start, end, nil)
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if len(overlapping) > 0 {
		return apperrors.ErrOverlapRejected
	}
	return nil
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
