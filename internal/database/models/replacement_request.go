package models

import "github.com/google/uuid"

// ReplacementRequest is one coverage offer: the requester asks the target to
// take over a shift, either whole or over [PartialStart, PartialEnd).
//
// OriginalStartTime/OriginalEndTime freeze the shift's bounds at the first
// acceptance touching its lineage; they anchor segment re-homing and lineage
// cloning after splits. ClosedBy records who, by accepting a competing
// request, closed this one out (distinct from an explicit rejection).
// ParentRequestID is set on rows cloned during a split so the substitution
// chain survives without value matching. Requests are never deleted.
type ReplacementRequest struct {
	BaseModel
	ShiftID           uuid.UUID     `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequesterID       uuid.UUID     `json:"requester_id" gorm:"type:uuid;not null;index" validate:"required"`
	TargetUserID      uuid.UUID     `json:"target_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Partial           bool          `json:"partial" gorm:"default:false"`
	PartialStart      *TimeOfDay    `json:"partial_start,omitempty" gorm:"type:varchar(5)"`
	PartialEnd        *TimeOfDay    `json:"partial_end,omitempty" gorm:"type:varchar(5)"`
	OriginalStartTime *TimeOfDay    `json:"original_start_time,omitempty" gorm:"type:varchar(5)"`
	OriginalEndTime   *TimeOfDay    `json:"original_end_time,omitempty" gorm:"type:varchar(5)"`
	Status            RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ClosedByID        *uuid.UUID    `json:"closed_by_id,omitempty" gorm:"type:uuid"`
	ParentRequestID   *uuid.UUID    `json:"parent_request_id,omitempty" gorm:"type:uuid"`

	Shift      Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	Requester  User  `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	TargetUser User  `json:"target_user,omitempty" gorm:"foreignKey:TargetUserID;constraint:OnDelete:CASCADE"`
	ClosedBy   *User `json:"closed_by,omitempty" gorm:"foreignKey:ClosedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ReplacementRequest
func (ReplacementRequest) TableName() string {
	return "replacement_requests"
}

// OverlapsInterval reports whether this partial request's window intersects
// [start, end). Total requests never report an overlap here.
func (r *ReplacementRequest) OverlapsInterval(start, end TimeOfDay) bool {
	if !r.Partial || r.PartialStart == nil || r.PartialEnd == nil {
		return false
	}
	return Overlaps(*r.PartialStart, *r.PartialEnd, start, end)
}
