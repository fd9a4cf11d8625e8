package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error with a field-level reason
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidStateError represents an operation applied to an entity whose current
// state forbids it, e.g. responding to a request that is no longer pending.
// Surfaced to callers as a conflict.
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// ConflictError represents a business rule conflict, e.g. an overlapping
// assignment under the reject overlap policy.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRoleNotFound          = &NotFoundError{Entity: "role"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrShiftNotFound         = &NotFoundError{Entity: "shift"}
	ErrTemplateShiftNotFound = &NotFoundError{Entity: "template shift"}
	ErrCourseTypeNotFound    = &NotFoundError{Entity: "course type"}
	ErrPayRateNotFound       = &NotFoundError{Entity: "pay rate"}
	ErrRequestNotFound       = &NotFoundError{Entity: "replacement request"}
)

// State Errors
var (
	ErrRequestNotPending = &InvalidStateError{Entity: "replacement request", Message: "already handled"}
	ErrRequestNotTotal   = &InvalidStateError{Entity: "replacement request", Message: "only accepted total requests propagate to templates"}
)

// Business Logic Errors
var (
	ErrNoTargetsSelected    = &ValidationError{Field: "target_user_ids", Message: "no collaborators selected"}
	ErrPartialBoundsMissing = &ValidationError{Field: "partial", Message: "partial_start and partial_end are required for a partial request"}
	ErrPartialBoundsInvalid = &ValidationError{Field: "partial", Message: "partial bounds must be HH:MM with start before end"}
	ErrPartialOutsideShift  = &ValidationError{Field: "partial", Message: "partial interval must lie within the shift interval"}
	ErrInvalidTimeRange     = &ValidationError{Field: "start_time", Message: "start time must be before end time"}
	ErrInvalidDateFormat    = &ValidationError{Field: "date", Message: "dates must be YYYY-MM-DD"}
	ErrEmptyWeekList        = &ValidationError{Field: "weeks", Message: "week list missing or empty"}
	ErrInvalidAction        = &ValidationError{Field: "action", Message: "action must be accept or reject"}
	ErrOverlapRejected      = &ConflictError{Message: "overlapping assignment for the same user rejected by policy"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingCaller      = &AuthenticationError{Message: "caller identity missing from context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, message string) error {
	return &InvalidStateError{Entity: entity, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}
