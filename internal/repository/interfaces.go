package repository

import (
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByCode(code string) (*models.Role, error)
	GetAll() ([]models.Role, error)
	Update(role *models.Role) error
	Delete(id uuid.UUID) error
	InUse(id uuid.UUID) (bool, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByRoleCode(code string) ([]models.User, error)
	Update(user *models.User) error
	ReplaceRoles(user *models.User, roles []models.Role) error
	Delete(id uuid.UUID) error
}

// CourseTypeRepositoryInterface defines the interface for course type repository operations
type CourseTypeRepositoryInterface interface {
	Create(courseType *models.CourseType) error
	GetByID(id uuid.UUID) (*models.CourseType, error)
	GetAll() ([]models.CourseType, error)
	Update(courseType *models.CourseType) error
	Delete(id uuid.UUID) error
}

// PayRateRepositoryInterface defines the interface for pay rate repository operations
type PayRateRepositoryInterface interface {
	Create(rate *models.PayRate) error
	GetByID(id uuid.UUID) (*models.PayRate, error)
	GetByUserAndRole(userID, roleID uuid.UUID) (*models.PayRate, error)
	GetByUserID(userID uuid.UUID) ([]models.PayRate, error)
	Update(rate *models.PayRate) error
	Delete(id uuid.UUID) error
}

// TemplateShiftRepositoryInterface defines the interface for template repository operations
type TemplateShiftRepositoryInterface interface {
	Create(template *models.TemplateShift) error
	GetByID(id uuid.UUID) (*models.TemplateShift, error)
	GetAll() ([]models.TemplateShift, error)
	GetByRoleID(roleID uuid.UUID) ([]models.TemplateShift, error)
	GetByWeekday(weekday int) ([]models.TemplateShift, error)
	GetByWeekdayAndRole(weekday int, roleID uuid.UUID) ([]models.TemplateShift, error)
	FindMatchingSlot(roleID uuid.UUID, weekday int, start, end models.TimeOfDay) (*models.TemplateShift, error)
	Update(template *models.TemplateShift) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Shift, error)
	GetByDateRange(start, end time.Time) ([]models.Shift, error)
	GetByMonth(year, month int) ([]models.Shift, error)
	GetTemplateOriginByWeek(roleID uuid.UUID, start, end time.Time) ([]models.Shift, error)
	FindOverlapping(userID uuid.UUID, date time.Time, start, end models.TimeOfDay, excludeID *uuid.UUID) ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
	WithTx(tx *gorm.DB) ShiftRepositoryInterface
}

// PublishedWeekRepositoryInterface defines the interface for published week repository operations
type PublishedWeekRepositoryInterface interface {
	Upsert(roleID uuid.UUID, startDate time.Time) error
	GetByRoleAndRange(roleID uuid.UUID, start, end time.Time) ([]models.PublishedWeek, error)
	WithTx(tx *gorm.DB) PublishedWeekRepositoryInterface
}

// ReplacementRequestRepositoryInterface defines the interface for ledger operations
type ReplacementRequestRepositoryInterface interface {
	Create(request *models.ReplacementRequest) error
	GetByID(id uuid.UUID) (*models.ReplacementRequest, error)
	GetWithAssociations(id uuid.UUID) (*models.ReplacementRequest, error)
	GetByShiftID(shiftID uuid.UUID, excludeID *uuid.UUID) ([]models.ReplacementRequest, error)
	GetAcceptedByShiftIDs(shiftIDs []uuid.UUID) ([]models.ReplacementRequest, error)
	ListSent(requesterID uuid.UUID, pendingOnly bool, year, month int) ([]models.ReplacementRequest, error)
	ListReceived(targetID uuid.UUID, pendingOnly bool, year, month int) ([]models.ReplacementRequest, error)
	CloseCompeting(shiftID, excludeID, closedBy uuid.UUID, predicates ...CompetingPredicate) (int64, error)
	FindPriorAccepted(shiftID, excludeID uuid.UUID, start, end models.TimeOfDay) (*models.ReplacementRequest, error)
	Update(request *models.ReplacementRequest) error
	WithTx(tx *gorm.DB) ReplacementRequestRepositoryInterface
}
