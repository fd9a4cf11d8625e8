package repository

import (
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for concrete shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ShiftRepository) WithTx(tx *gorm.DB) ShiftRepositoryInterface {
	return &ShiftRepository{db: tx}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("User").Preload("Role").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByIDForUpdate retrieves a shift by ID holding a row-level exclusive lock
// for the rest of the surrounding transaction. The coverage engine takes this
// lock before reading sibling requests so two acceptances on the same shift
// cannot interleave.
func (r *ShiftRepository) GetByIDForUpdate(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := forUpdate(r.db).First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByDateRange retrieves shifts in [start, end] ordered for calendar views
func (r *ShiftRepository) GetByDateRange(start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("User").Preload("Role").Preload("CourseType").
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetByMonth retrieves all shifts within one calendar month
func (r *ShiftRepository) GetByMonth(year, month int) ([]models.Shift, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return r.GetByDateRange(first, last)
}

// GetTemplateOriginByWeek retrieves the shifts the publish/diff engine owns
// for one role and week. Coverage-origin rows are excluded: they were created
// or resized by an accepted replacement and must not be reconciled by key.
func (r *ShiftRepository) GetTemplateOriginByWeek(roleID uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.
		Where("role_id = ? AND date BETWEEN ? AND ? AND origin = ?",
			roleID, start, end, models.ShiftOriginTemplate).
		Find(&shifts).Error
	return shifts, err
}

// FindOverlapping retrieves same-day shifts of the same user whose clock
// interval intersects [start, end). Consulted only under the reject overlap
// policy.
func (r *ShiftRepository) FindOverlapping(userID uuid.UUID, date time.Time, start, end models.TimeOfDay, excludeID *uuid.UUID) ([]models.Shift, error) {
	query := r.db.
		Where("user_id = ? AND date = ? AND start_time < ? AND end_time > ?", userID, date, end, start)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var shifts []models.Shift
	err := query.Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}
