package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Services return these so the HTTP layer can distinguish a
// state error ("invalid action") from a conflict ("opportunity full",
// "already applied") without string matching.
var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrCapacityFull         = errors.New("opportunity is at full capacity")
	ErrDuplicateApplication = errors.New("volunteer has already applied to this opportunity")
	ErrDuplicateAttendance  = errors.New("attendance already recorded for this volunteer")
	ErrActorNotApproved     = errors.New("account is not approved to perform this action")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// StateError reports an illegal lifecycle transition attempt. It carries the
// current state and the rejected target so the client can render both.
type StateError struct {
	Entity    string
	Current   string
	Attempted string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s in state %s cannot transition to %s", e.Entity, e.Current, e.Attempted)
}

func NewStateError(entity string, current, attempted fmt.Stringer) error {
	return &StateError{Entity: entity, Current: current.String(), Attempted: attempted.String()}
}

func (s ApplicationStatus) String() string { return string(s) }

func (s OpportunityStatus) String() string { return string(s) }

func (s ReportStatus) String() string { return string(s) }
