package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayRateRepository handles database operations for pay rates
type PayRateRepository struct {
	db *gorm.DB
}

// NewPayRateRepository creates a new pay rate repository
func NewPayRateRepository(db *gorm.DB) *PayRateRepository {
	return &PayRateRepository{db: db}
}

// Create creates a new pay rate
func (r *PayRateRepository) Create(rate *models.PayRate) error {
	return r.db.Create(rate).Error
}

// GetByID retrieves a pay rate by ID
func (r *PayRateRepository) GetByID(id uuid.UUID) (*models.PayRate, error) {
	var rate models.PayRate
	err := r.db.Preload("Role").First(&rate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetByUserAndRole retrieves the rate for one user in one role
func (r *PayRateRepository) GetByUserAndRole(userID, roleID uuid.UUID) (*models.PayRate, error) {
	var rate models.PayRate
	err := r.db.First(&rate, "user_id = ? AND role_id = ?", userID, roleID).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetByUserID retrieves all rates for a user
func (r *PayRateRepository) GetByUserID(userID uuid.UUID) ([]models.PayRate, error) {
	var rates []models.PayRate
	err := r.db.Preload("Role").Where("user_id = ?", userID).Find(&rates).Error
	return rates, err
}

// Update updates a pay rate
func (r *PayRateRepository) Update(rate *models.PayRate) error {
	return r.db.Save(rate).Error
}

// Delete deletes a pay rate
func (r *PayRateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PayRate{}, "id = ?", id).Error
}
