package repository

import (
	"errors"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublishedWeekRepository handles database operations for published week markers
type PublishedWeekRepository struct {
	db *gorm.DB
}

// NewPublishedWeekRepository creates a new published week repository
func NewPublishedWeekRepository(db *gorm.DB) *PublishedWeekRepository {
	return &PublishedWeekRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PublishedWeekRepository) WithTx(tx *gorm.DB) PublishedWeekRepositoryInterface {
	return &PublishedWeekRepository{db: tx}
}

// Upsert records that a (role, week-start) pair has been published. Idempotent:
// an existing marker is left untouched. Re-publishing is never blocked on it.
func (r *PublishedWeekRepository) Upsert(roleID uuid.UUID, startDate time.Time) error {
	var existing models.PublishedWeek
	err := r.db.First(&existing, "role_id = ? AND start_date = ?", roleID, startDate).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(&models.PublishedWeek{RoleID: roleID, StartDate: startDate}).Error
}

// GetByRoleAndRange retrieves markers for one role with start dates in [start, end]
func (r *PublishedWeekRepository) GetByRoleAndRange(roleID uuid.UUID, start, end time.Time) ([]models.PublishedWeek, error) {
	var weeks []models.PublishedWeek
	err := r.db.
		Where("role_id = ? AND start_date BETWEEN ? AND ?", roleID, start, end).
		Order("start_date ASC").
		Find(&weeks).Error
	return weeks, err
}
