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

// PayRateService handles per-role compensation and monthly accounting
type PayRateService struct {
	rateRepo  repository.PayRateRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	users     UserDirectory
	validator *validator.Validate
}

// NewPayRateService creates a new pay rate service
func NewPayRateService(
	rateRepo repository.PayRateRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	users UserDirectory,
	validator *validator.Validate,
) *PayRateService {
	return &PayRateService{
		rateRepo:  rateRepo,
		roleRepo:  roleRepo,
		shiftRepo: shiftRepo,
		users:     users,
		validator: validator,
	}
}

// PayRateRequest represents a pay rate create or update
type PayRateRequest struct {
	UserID   uuid.UUID      `json:"user_id" validate:"required"`
	RoleCode string         `json:"role" validate:"required"`
	PayType  models.PayType `json:"pay_type" validate:"required"`
	Amount   float64        `json:"amount" validate:"required,gt=0"`
}

// SetPayRate creates or updates the rate for a (user, role) pair
func (s *PayRateService) SetPayRate(req *PayRateRequest) (*models.PayRate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.PayType.IsValid() {
		return nil, apperrors.NewValidationError("pay_type", "must be hour or shift")
	}
	if _, err := s.users.GetByID(req.UserID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	role, err := s.roleRepo.GetByCode(req.RoleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("load role: %w", err)
	}

	rate, err := s.rateRepo.GetByUserAndRole(req.UserID, role.ID)
	switch {
	case err == nil:
		rate.PayType = req.PayType
		rate.Amount = req.Amount
		if err := s.rateRepo.Update(rate); err != nil {
			return nil, fmt.Errorf("update pay rate: %w", err)
		}
		return rate, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rate = &models.PayRate{
			UserID:  req.UserID,
			RoleID:  role.ID,
			PayType: req.PayType,
			Amount:  req.Amount,
		}
		if err := s.rateRepo.Create(rate); err != nil {
			return nil, fmt.Errorf("create pay rate: %w", err)
		}
		return rate, nil
	default:
		return nil, fmt.Errorf("load pay rate: %w", err)
	}
}

// GetUserRates retrieves all of a user's rates
func (s *PayRateService) GetUserRates(userID uuid.UUID) ([]models.PayRate, error) {
	return s.rateRepo.GetByUserID(userID)
}

// DeletePayRate deletes a pay rate
func (s *PayRateService) DeletePayRate(id uuid.UUID) error {
	if _, err := s.rateRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPayRateNotFound
		}
		return fmt.Errorf("load pay rate: %w", err)
	}
	return s.rateRepo.Delete(id)
}

// AccountingLine is one worked shift priced by the holder's rate for its role.
type AccountingLine struct {
	ShiftID   uuid.UUID        `json:"shift_id"`
	Date      string           `json:"date"`
	StartTime models.TimeOfDay `json:"start_time"`
	EndTime   models.TimeOfDay `json:"end_time"`
	RoleCode  string           `json:"role"`
	Hours     float64          `json:"hours"`
	Amount    float64          `json:"amount"`
	Unpriced  bool             `json:"unpriced,omitempty"`
}

// MonthlyAccounting is the payroll summary for one user and month.
type MonthlyAccounting struct {
	UserID     uuid.UUID        `json:"user_id"`
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	TotalHours float64          `json:"total_hours"`
	Total      float64          `json:"total"`
	Lines      []AccountingLine `json:"lines"`
}

// ComputeMonthlyAccounting prices every shift the user held in a month.
// Shifts with no rate for their role appear as unpriced lines with a zero
// amount so the gap is visible to whoever runs payroll.
func (s *PayRateService) ComputeMonthlyAccounting(userID uuid.UUID, year, month int) (*MonthlyAccounting, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "must be between 1 and 12")
	}
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	shifts, err := s.shiftRepo.GetByMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("load month shifts: %w", err)
	}

	out := &MonthlyAccounting{UserID: userID, Year: year, Month: month}
	rates := make(map[uuid.UUID]*models.PayRate)
	for i := range shifts {
		sh := &shifts[i]
		if sh.UserID != userID {
			continue
		}

		rate, ok := rates[sh.RoleID]
		if !ok {
			rate, err = s.rateRepo.GetByUserAndRole(userID, sh.RoleID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("load pay rate: %w", err)
				}
				rate = nil
			}
			rates[sh.RoleID] = rate
		}

		line := AccountingLine{
			ShiftID:   sh.ID,
			Date:      dateOnly(sh.Date),
			StartTime: sh.StartTime,
			EndTime:   sh.EndTime,
			RoleCode:  sh.Role.Code,
			Hours:     sh.TotalHours(),
		}
		if rate != nil {
			line.Amount = rate.PaymentFor(sh)
		} else {
			line.Unpriced = true
		}
		out.TotalHours += line.Hours
		out.Total += line.Amount
		out.Lines = append(out.Lines, line)
	}
	return out, nil
}
