package models

// RequestStatus is the lifecycle state of a replacement request. A request
// starts pending; the other three states are terminal.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether a request in this status can no longer transition.
func (s RequestStatus) Terminal() bool {
	return s.IsValid() && s != RequestStatusPending
}

// ShiftOrigin records which engine produced a shift row. Coverage-origin rows
// are never reconciled or deleted by publish/diff.
type ShiftOrigin string

const (
	ShiftOriginTemplate ShiftOrigin = "template"
	ShiftOriginCoverage ShiftOrigin = "coverage"
)

// IsValid checks if the ShiftOrigin is valid
func (o ShiftOrigin) IsValid() bool {
	return o == ShiftOriginTemplate || o == ShiftOriginCoverage
}

// PayType defines how a pay rate is applied
type PayType string

const (
	PayTypeHourly   PayType = "hour"
	PayTypePerShift PayType = "shift"
)

// IsValid checks if the PayType is valid
func (p PayType) IsValid() bool {
	return p == PayTypeHourly || p == PayTypePerShift
}

// OverlapPolicy controls whether one worker may hold two shifts over the same
// clock interval on the same date. The original system allowed it; "reject"
// turns publish-time overlaps into a conflict error.
type OverlapPolicy string

const (
	OverlapPolicyAllow  OverlapPolicy = "allow"
	OverlapPolicyReject OverlapPolicy = "reject"
)

// IsValid checks if the OverlapPolicy is valid
func (p OverlapPolicy) IsValid() bool {
	return p == OverlapPolicyAllow || p == OverlapPolicyReject
}
