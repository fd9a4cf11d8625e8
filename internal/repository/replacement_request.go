package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetingPredicate narrows which sibling requests a CloseCompeting call
// cancels. Predicates on the same call are OR-ed together.
type CompetingPredicate func(*gorm.DB) *gorm.DB

// CompetingTotals matches sibling total requests.
func CompetingTotals() CompetingPredicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Or("partial = ?", false)
	}
}

// CompetingOverlappingPartials matches sibling partial requests whose window
// intersects [start, end).
func CompetingOverlappingPartials(start, end models.TimeOfDay) CompetingPredicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Or("partial = ? AND partial_start < ? AND partial_end > ?", true, end, start)
	}
}

// CompetingAll matches every sibling request.
func CompetingAll() CompetingPredicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Or("1 = 1")
	}
}

// ReplacementRequestRepository handles database operations for the coverage
// request ledger. Requests are never deleted; terminal rows are the history.
type ReplacementRequestRepository struct {
	db *gorm.DB
}

// NewReplacementRequestRepository creates a new replacement request repository
func NewReplacementRequestRepository(db *gorm.DB) *ReplacementRequestRepository {
	return &ReplacementRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ReplacementRequestRepository) WithTx(tx *gorm.DB) ReplacementRequestRepositoryInterface {
	return &ReplacementRequestRepository{db: tx}
}

// Create creates a new replacement request
func (r *ReplacementRequestRepository) Create(request *models.ReplacementRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a replacement request by ID
func (r *ReplacementRequestRepository) GetByID(id uuid.UUID) (*models.ReplacementRequest, error) {
	var request models.ReplacementRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetWithAssociations retrieves a request with shift, requester and target preloaded
func (r *ReplacementRequestRepository) GetWithAssociations(id uuid.UUID) (*models.ReplacementRequest, error) {
	var request models.ReplacementRequest
	err := r.db.
		Preload("Shift").Preload("Requester").Preload("TargetUser").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByShiftID retrieves all requests on a shift, optionally excluding one
func (r *ReplacementRequestRepository) GetByShiftID(shiftID uuid.UUID, excludeID *uuid.UUID) ([]models.ReplacementRequest, error) {
	query := r.db.Where("shift_id = ?", shiftID)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var requests []models.ReplacementRequest
	err := query.Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// GetAcceptedByShiftIDs retrieves accepted requests across a set of shifts,
// newest first, for embedding replacement summaries in calendar views.
func (r *ReplacementRequestRepository) GetAcceptedByShiftIDs(shiftIDs []uuid.UUID) ([]models.ReplacementRequest, error) {
	if len(shiftIDs) == 0 {
		return nil, nil
	}
	var requests []models.ReplacementRequest
	err := r.db.
		Preload("Requester").Preload("TargetUser").
		Where("shift_id IN ? AND status = ?", shiftIDs, models.RequestStatusAccepted).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListSent retrieves requests made by a user, newest shift first
func (r *ReplacementRequestRepository) ListSent(requesterID uuid.UUID, pendingOnly bool, year, month int) ([]models.ReplacementRequest, error) {
	return r.list("requester_id", requesterID, pendingOnly, year, month)
}

// ListReceived retrieves requests addressed to a user, newest shift first
func (r *ReplacementRequestRepository) ListReceived(targetID uuid.UUID, pendingOnly bool, year, month int) ([]models.ReplacementRequest, error) {
	return r.list("target_user_id", targetID, pendingOnly, year, month)
}

func (r *ReplacementRequestRepository) list(column string, userID uuid.UUID, pendingOnly bool, year, month int) ([]models.ReplacementRequest, error) {
	query := r.db.
		Preload("Shift").Preload("Shift.Role").Preload("Shift.User").
		Preload("Requester").Preload("TargetUser").Preload("ClosedBy").
		Joins("JOIN shifts ON shifts.id = replacement_requests.shift_id").
		Where("replacement_requests."+column+" = ?", userID)

	if pendingOnly {
		query = query.Where("replacement_requests.status = ?", models.RequestStatusPending)
	}
	if year > 0 && month > 0 {
		first := firstOfMonth(year, month)
		query = query.Where("shifts.date BETWEEN ? AND ?", first, first.AddDate(0, 1, -1))
	}

	var requests []models.ReplacementRequest
	err := query.Order("shifts.date DESC").Find(&requests).Error
	return requests, err
}

// CloseCompeting cancels every pending sibling request on the shift that any
// of the predicates matches, recording who closed them out. Returns the number
// of rows cancelled.
func (r *ReplacementRequestRepository) CloseCompeting(shiftID, excludeID, closedBy uuid.UUID, predicates ...CompetingPredicate) (int64, error) {
	match := r.db.Model(&models.ReplacementRequest{})
	for _, p := range predicates {
		match = p(match)
	}

	result := r.db.Model(&models.ReplacementRequest{}).
		Where("shift_id = ? AND id != ? AND status = ?", shiftID, excludeID, models.RequestStatusPending).
		Where(match).
		Updates(map[string]interface{}{
			"status":       models.RequestStatusCancelled,
			"closed_by_id": closedBy,
		})
	return result.RowsAffected, result.Error
}

// FindPriorAccepted finds the most recent accepted request on the shift whose
// recorded original bounds equal [start, end). The coverage engine uses it to
// discover the substitution that put the current holder into the seat before a
// split, so the retained pieces can inherit that lineage.
func (r *ReplacementRequestRepository) FindPriorAccepted(shiftID, excludeID uuid.UUID, start, end models.TimeOfDay) (*models.ReplacementRequest, error) {
	var request models.ReplacementRequest
	err := r.db.
		Where("shift_id = ? AND id != ? AND status = ? AND original_start_time = ? AND original_end_time = ?",
			shiftID, excludeID, models.RequestStatusAccepted, start, end).
		Order("created_at DESC").
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Update updates a replacement request
func (r *ReplacementRequestRepository) Update(request *models.ReplacementRequest) error {
	return r.db.Save(request).Error
}
