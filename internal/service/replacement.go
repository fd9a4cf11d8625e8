package service

import (
	"errors"
	"fmt"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actions a target may take on a pending request.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// ReplacementService owns the coverage request ledger and the resolution
// engine that reshapes shifts when a request is accepted.
type ReplacementService struct {
	db           *gorm.DB
	shiftRepo    repository.ShiftRepositoryInterface
	requestRepo  repository.ReplacementRequestRepositoryInterface
	templateRepo repository.TemplateShiftRepositoryInterface
	users        UserDirectory
	validator    *validator.Validate
}

// NewReplacementService creates a new replacement service
func NewReplacementService(
	db *gorm.DB,
	shiftRepo repository.ShiftRepositoryInterface,
	requestRepo repository.ReplacementRequestRepositoryInterface,
	templateRepo repository.TemplateShiftRepositoryInterface,
	users UserDirectory,
	validator *validator.Validate,
) *ReplacementService {
	return &ReplacementService{
		db:           db,
		shiftRepo:    shiftRepo,
		requestRepo:  requestRepo,
		templateRepo: templateRepo,
		users:        users,
		validator:    validator,
	}
}

// CreateRequestsInput carries a coverage ask for one shift. CallerID comes
// from the session when present; RequesterID overrides it, and when both are
// absent the shift holder is assumed to be asking.
type CreateRequestsInput struct {
	ShiftID       uuid.UUID         `json:"shift_id" validate:"required"`
	CallerID      *uuid.UUID        `json:"-"`
	RequesterID   *uuid.UUID        `json:"requester_id,omitempty"`
	TargetUserIDs []uuid.UUID       `json:"target_users"`
	Partial       bool              `json:"partial"`
	PartialStart  *models.TimeOfDay `json:"partial_start,omitempty"`
	PartialEnd    *models.TimeOfDay `json:"partial_end,omitempty"`
}

// CreateRequests opens one pending request per target. Targets equal to the
// requester are silently skipped. The shift's current bounds are frozen onto
// each row so later splits can still identify this lineage.
func (s *ReplacementService) CreateRequests(input *CreateRequestsInput) ([]uuid.UUID, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(input.TargetUserIDs) == 0 {
		return nil, apperrors.ErrNoTargetsSelected
	}

	shift, err := s.shiftRepo.GetByID(input.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}

	requesterID := shift.UserID
	if input.CallerID != nil {
		requesterID = *input.CallerID
	}
	if input.RequesterID != nil {
		if _, err := s.users.GetByID(*input.RequesterID); err != nil {
			return nil, apperrors.NewValidationError("requester_id", "unknown user")
		}
		requesterID = *input.RequesterID
	}

	if input.Partial {
		if input.PartialStart == nil || input.PartialEnd == nil {
			return nil, apperrors.ErrPartialBoundsMissing
		}
		if !input.PartialStart.Valid() || !input.PartialEnd.Valid() ||
			!input.PartialStart.Before(*input.PartialEnd) {
			return nil, apperrors.ErrPartialBoundsInvalid
		}
		if !shift.CoversInterval(*input.PartialStart, *input.PartialEnd) {
			return nil, apperrors.ErrPartialOutsideShift
		}
	}

	origStart, origEnd := shift.StartTime, shift.EndTime
	created := make([]uuid.UUID, 0, len(input.TargetUserIDs))
	for _, targetID := range input.TargetUserIDs {
		if targetID == requesterID {
			continue
		}
		req := &models.ReplacementRequest{
			ShiftID:           shift.ID,
			RequesterID:       requesterID,
			TargetUserID:      targetID,
			Partial:           input.Partial,
			OriginalStartTime: &origStart,
			OriginalEndTime:   &origEnd,
			Status:            models.RequestStatusPending,
		}
		if input.Partial {
			req.PartialStart = input.PartialStart
			req.PartialEnd = input.PartialEnd
		}
		if err := s.requestRepo.Create(req); err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		created = append(created, req.ID)
	}

	return created, nil
}

// RespondResult summarizes what a response did to the ledger and the rota.
type RespondResult struct {
	Outcome         string      `json:"outcome"`
	ClosedSiblings  int64       `json:"closed_siblings"`
	SegmentShiftIDs []uuid.UUID `json:"segment_shift_ids,omitempty"`
}

// Respond applies a target's decision. Rejection only flips the row. An
// acceptance runs the resolution engine: the whole operation executes in one
// transaction with the shift row locked, so concurrent acceptances on the
// same shift serialize and the loser finds its request already cancelled.
func (s *ReplacementService) Respond(requestID uuid.UUID, action string, callerID uuid.UUID) (*RespondResult, error) {
	if action != ActionAccept && action != ActionReject {
		return nil, apperrors.ErrInvalidAction
	}

	result := &RespondResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		shifts := s.shiftRepo.WithTx(tx)
		requests := s.requestRepo.WithTx(tx)

		req, err := requests.GetByID(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRequestNotFound
			}
			return fmt.Errorf("load request: %w", err)
		}
		if req.TargetUserID != callerID {
			return apperrors.NewValidationError("request_id", "request is not addressed to the caller")
		}

		shift, err := shifts.GetByIDForUpdate(req.ShiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrShiftNotFound
			}
			return fmt.Errorf("lock shift: %w", err)
		}

		// Re-read after the lock: a concurrent acceptance may have closed
		// this request while we waited.
		req, err = requests.GetByID(requestID)
		if err != nil {
			return fmt.Errorf("reload request: %w", err)
		}
		if req.Status != models.RequestStatusPending {
			return apperrors.ErrRequestNotPending
		}

		if action == ActionReject {
			req.Status = models.RequestStatusRejected
			if err := requests.Update(req); err != nil {
				return fmt.Errorf("reject request: %w", err)
			}
			result.Outcome = "rejected"
			return nil
		}

		// Anchors are stamped at creation; older rows may predate that.
		if req.OriginalStartTime == nil {
			v := shift.StartTime
			req.OriginalStartTime = &v
		}
		if req.OriginalEndTime == nil {
			v := shift.EndTime
			req.OriginalEndTime = &v
		}
		req.Status = models.RequestStatusAccepted
		if err := requests.Update(req); err != nil {
			return fmt.Errorf("accept request: %w", err)
		}

		if !req.Partial || s.coversWholeShift(req, shift) {
			return s.acceptTotal(shifts, requests, req, shift, result)
		}
		return s.acceptPartial(shifts, requests, req, shift, result)
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"request_id": requestID,
		"outcome":    result.Outcome,
		"closed":     result.ClosedSiblings,
	}).Info("replacement response applied")
	return result, nil
}

// coversWholeShift treats a partial asking for the full current span as a
// total handover; splitting would leave empty segments.
func (s *ReplacementService) coversWholeShift(req *models.ReplacementRequest, shift *models.Shift) bool {
	return req.PartialStart != nil && req.PartialEnd != nil &&
		!shift.StartTime.Before(*req.PartialStart) && !shift.EndTime.After(*req.PartialEnd)
}

func (s *ReplacementService) acceptTotal(
	shifts repository.ShiftRepositoryInterface,
	requests repository.ReplacementRequestRepositoryInterface,
	req *models.ReplacementRequest,
	shift *models.Shift,
	result *RespondResult,
) error {
	shift.UserID = req.TargetUserID
	shift.Origin = models.ShiftOriginCoverage
	if err := shifts.Update(shift); err != nil {
		return fmt.Errorf("transfer shift: %w", err)
	}

	closed, err := requests.CloseCompeting(shift.ID, req.ID, req.TargetUserID,
		repository.CompetingAll())
	if err != nil {
		return fmt.Errorf("close competing requests: %w", err)
	}
	result.ClosedSiblings = closed
	result.Outcome = "accepted_total"
	return nil
}

func (s *ReplacementService) acceptPartial(
	shifts repository.ShiftRepositoryInterface,
	requests repository.ReplacementRequestRepositoryInterface,
	req *models.ReplacementRequest,
	shift *models.Shift,
	result *RespondResult,
) error {
	partStart, partEnd := *req.PartialStart, *req.PartialEnd
	if !shift.CoversInterval(partStart, partEnd) {
		return apperrors.ErrPartialOutsideShift
	}
	origStart, origEnd := shift.StartTime, shift.EndTime
	priorHolderID := shift.UserID

	// Requests that compete with the accepted window lose now; pending
	// partials elsewhere on the shift survive to be re-homed below.
	closed, err := requests.CloseCompeting(shift.ID, req.ID, req.TargetUserID,
		repository.CompetingTotals(),
		repository.CompetingOverlappingPartials(partStart, partEnd))
	if err != nil {
		return fmt.Errorf("close competing requests: %w", err)
	}
	result.ClosedSiblings = closed

	// The accepted substitution that installed the current holder, if any,
	// identified by the pre-split bounds it recorded.
	prior, err := requests.FindPriorAccepted(shift.ID, req.ID, origStart, origEnd)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find prior acceptance: %w", err)
	}

	survivors, err := requests.GetByShiftID(shift.ID, &req.ID)
	if err != nil {
		return fmt.Errorf("load sibling requests: %w", err)
	}

	// The existing row becomes the accepted window under the new target;
	// the uncovered remainder goes to fresh rows kept by the prior holder.
	shift.UserID = req.TargetUserID
	shift.StartTime = partStart
	shift.EndTime = partEnd
	shift.Origin = models.ShiftOriginCoverage
	if err := shifts.Update(shift); err != nil {
		return fmt.Errorf("resize shift: %w", err)
	}

	var requesterSegments []*models.Shift
	makeSegment := func(start, end models.TimeOfDay) error {
		segment := &models.Shift{
			UserID:       priorHolderID,
			RoleID:       shift.RoleID,
			Date:         shift.Date,
			StartTime:    start,
			EndTime:      end,
			CourseTypeID: shift.CourseTypeID,
			Approved:     shift.Approved,
			Origin:       models.ShiftOriginCoverage,
		}
		if err := shifts.Create(segment); err != nil {
			return fmt.Errorf("create segment: %w", err)
		}
		result.SegmentShiftIDs = append(result.SegmentShiftIDs, segment.ID)

		if prior != nil && priorHolderID == prior.TargetUserID {
			clone := &models.ReplacementRequest{
				ShiftID:           segment.ID,
				RequesterID:       prior.RequesterID,
				TargetUserID:      prior.TargetUserID,
				Partial:           prior.Partial,
				PartialStart:      prior.PartialStart,
				PartialEnd:        prior.PartialEnd,
				OriginalStartTime: prior.OriginalStartTime,
				OriginalEndTime:   prior.OriginalEndTime,
				Status:            models.RequestStatusAccepted,
				ParentRequestID:   &prior.ID,
			}
			if err := requests.Create(clone); err != nil {
				return fmt.Errorf("clone prior acceptance: %w", err)
			}
		}
		if priorHolderID == req.RequesterID {
			requesterSegments = append(requesterSegments, segment)
		}
		return nil
	}

	if origStart.Before(partStart) {
		if err := makeSegment(origStart, partStart); err != nil {
			return err
		}
	}
	if partEnd.Before(origEnd) {
		if err := makeSegment(partEnd, origEnd); err != nil {
			return err
		}
	}

	// Pending partials outside the accepted window either follow the
	// requester onto a segment that still contains them, or die.
	for i := range survivors {
		other := &survivors[i]
		if other.Status != models.RequestStatusPending || !other.Partial {
			continue
		}
		if other.PartialStart == nil || other.PartialEnd == nil {
			continue
		}
		var home *models.Shift
		for _, seg := range requesterSegments {
			if seg.CoversInterval(*other.PartialStart, *other.PartialEnd) {
				home = seg
				break
			}
		}
		if home != nil {
			other.ShiftID = home.ID
			if err := requests.Update(other); err != nil {
				return fmt.Errorf("re-home request: %w", err)
			}
			continue
		}
		other.Status = models.RequestStatusCancelled
		closedBy := req.TargetUserID
		other.ClosedByID = &closedBy
		if err := requests.Update(other); err != nil {
			return fmt.Errorf("cancel orphaned request: %w", err)
		}
		result.ClosedSiblings++
	}

	result.Outcome = "accepted_partial"
	return nil
}

// PropagateToTemplate rewrites the weekly template slot behind an accepted
// total request so future publishes assign the new holder. It is an explicit
// follow-up step, never triggered by Respond itself.
func (s *ReplacementService) PropagateToTemplate(requestID uuid.UUID) error {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return fmt.Errorf("load request: %w", err)
	}
	if req.Status != models.RequestStatusAccepted {
		return apperrors.ErrRequestNotPending
	}
	if req.Partial {
		return apperrors.ErrRequestNotTotal
	}

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("load shift: %w", err)
	}

	start, end := shift.StartTime, shift.EndTime
	if req.OriginalStartTime != nil && req.OriginalEndTime != nil {
		start, end = *req.OriginalStartTime, *req.OriginalEndTime
	}

	tpl, err := s.templateRepo.FindMatchingSlot(shift.RoleID, mondayIndex(shift.Date), start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateShiftNotFound
		}
		return fmt.Errorf("find template slot: %w", err)
	}

	target := req.TargetUserID
	tpl.UserID = &target
	return s.templateRepo.Update(tpl)
}

// RequestView is a denormalized ledger row for list endpoints.
type RequestView struct {
	ID            uuid.UUID         `json:"id"`
	ShiftID       uuid.UUID         `json:"shift_id"`
	ShiftDate     string            `json:"shift_date"`
	ShiftStart    models.TimeOfDay  `json:"shift_start"`
	ShiftEnd      models.TimeOfDay  `json:"shift_end"`
	RoleCode      string            `json:"role"`
	RequesterName string            `json:"requester_name"`
	TargetName    string            `json:"target_name"`
	Partial       bool              `json:"partial"`
	PartialStart  *models.TimeOfDay `json:"partial_start,omitempty"`
	PartialEnd    *models.TimeOfDay `json:"partial_end,omitempty"`
	Status        string            `json:"status"`
	ClosedByName  string            `json:"closed_by_name,omitempty"`
	CreatedAt     string            `json:"created_at"`
}

// ListSent returns the requests a user opened, newest shift first.
func (s *ReplacementService) ListSent(userID uuid.UUID, pendingOnly bool, year, month int) ([]RequestView, error) {
	rows, err := s.requestRepo.ListSent(userID, pendingOnly, year, month)
	if err != nil {
		return nil, fmt.Errorf("list sent requests: %w", err)
	}
	return toRequestViews(rows), nil
}

// ListReceived returns the requests addressed to a user, newest shift first.
func (s *ReplacementService) ListReceived(userID uuid.UUID, pendingOnly bool, year, month int) ([]RequestView, error) {
	rows, err := s.requestRepo.ListReceived(userID, pendingOnly, year, month)
	if err != nil {
		return nil, fmt.Errorf("list received requests: %w", err)
	}
	return toRequestViews(rows), nil
}

func toRequestViews(rows []models.ReplacementRequest) []RequestView {
	views := make([]RequestView, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		view := RequestView{
			ID:            r.ID,
			ShiftID:       r.ShiftID,
			ShiftDate:     dateOnly(r.Shift.Date),
			ShiftStart:    r.Shift.StartTime,
			ShiftEnd:      r.Shift.EndTime,
			RoleCode:      r.Shift.Role.Code,
			RequesterName: r.Requester.FullName(),
			TargetName:    r.TargetUser.FullName(),
			Partial:       r.Partial,
			PartialStart:  r.PartialStart,
			PartialEnd:    r.PartialEnd,
			Status:        string(r.Status),
			CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if r.ClosedBy != nil {
			view.ClosedByName = r.ClosedBy.FullName()
		}
		views = append(views, view)
	}
	return views
}
