package errs

import (
	"fmt"
)

// Sentinel errors for request authorization and lifecycle-stage failures.
var (
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrNotAuthorized    = fmt.Errorf("not authorized")
	ErrInvalidStage     = fmt.Errorf("invalid stage")
)

// NotAuthorizedError indicates that a verified requester attempted to act on
// an object they do not own. RequesterID is the verified identity, ParamName
// names the kind of object, ID is the object identifier.
type NotAuthorizedError struct {
	ParamName   string
	ID          any
	RequesterID any
	Cause       error
}

// NewNotAuthorizedError creates a NotAuthorizedError without a cause.
func NewNotAuthorizedError(paramName string, id any, requesterID any) *NotAuthorizedError {
	return &NotAuthorizedError{ParamName: paramName, ID: id, RequesterID: requesterID}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: requester %s does not own %s %s (cause: %s)",
			ErrNotAuthorized, e.RequesterID, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: requester %s does not own %s %s",
		ErrNotAuthorized, e.RequesterID, e.ParamName, e.ID))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// InvalidStageError indicates that an order's current lifecycle stage does
// not permit the requested transition, for example cancelling an order that
// has already been delivered.
type InvalidStageError struct {
	Operation string
	Stage     string
	Cause     error
}

// NewInvalidStageError creates an InvalidStageError without a cause.
func NewInvalidStageError(operation string, stage string) *InvalidStageError {
	return &InvalidStageError{Operation: operation, Stage: stage}
}

// NewInvalidStageErrorWithCause creates an InvalidStageError wrapping a cause.
func NewInvalidStageErrorWithCause(operation string, stage string, cause error) *InvalidStageError {
	return &InvalidStageError{Operation: operation, Stage: stage, Cause: cause}
}

func (e *InvalidStageError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s in stage %s (cause: %s)",
			ErrInvalidStage, e.Operation, e.Stage, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s in stage %s", ErrInvalidStage, e.Operation, e.Stage))
}

func (e *InvalidStageError) Unwrap() error {
	return ErrInvalidStage
}
