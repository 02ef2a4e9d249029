package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrReturnRequestIsNotConstructed is returned when a ReturnRequest was not
// created through NewReturnRequest or RestoreReturnRequest.
var ErrReturnRequestIsNotConstructed = errors.New(
	"ReturnRequest must be created via NewReturnRequest or RestoreReturnRequest",
)

// MinReturnReasonLength is the minimum length of a return reason.
// Shorter reasons are rejected to avoid low-quality submissions.
const MinReturnReasonLength = 10

// ReturnStatus represents the resolution state of a return request.
type ReturnStatus int

const (
	// ReturnUnknown represents an invalid or undefined return status.
	ReturnUnknown ReturnStatus = iota

	// ReturnPending is the initial state of every new return request.
	ReturnPending

	// ReturnApproved indicates support accepted the return.
	ReturnApproved

	// ReturnRejected indicates support declined the return.
	ReturnRejected

	// ReturnProcessing indicates the returned parcel is on its way back.
	ReturnProcessing
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnUnknown:    "Unknown",
		ReturnPending:    "Pending",
		ReturnApproved:   "Approved",
		ReturnRejected:   "Rejected",
		ReturnProcessing: "Processing",
	}
}

// Validate checks if the ReturnStatus value is valid.
func (s ReturnStatus) Validate() error {
	if s < ReturnPending || s > ReturnProcessing {
		return errs.NewValueIsInvalidErrorWithCause("return status",
			fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

// String returns the human-readable name of the return status.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ReturnRequest is a value object describing a customer's request to return
// a delivered order. At most one return request is attached to an order; the
// request is created once and its fields never change inside this service
// (resolution updates arrive from an external support workflow).
type ReturnRequest struct {
	reason      string
	comments    string
	requestDate time.Time
	status      ReturnStatus

	guard guard.ConstructorGuard
}

// NewReturnRequest creates a pending return request.
// The reason is mandatory and must be at least MinReturnReasonLength
// characters. Comments are optional and default to the empty string.
func NewReturnRequest(reason string, comments string, requestDate time.Time) (ReturnRequest, error) {
	if reason == "" {
		return ReturnRequest{}, errs.NewValueIsRequiredError("reason")
	}
	if len(reason) < MinReturnReasonLength {
		return ReturnRequest{}, errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("must be at least %d characters", MinReturnReasonLength))
	}
	if requestDate.IsZero() {
		return ReturnRequest{}, errs.NewValueIsRequiredError("requestDate")
	}

	return ReturnRequest{
		reason:      reason,
		comments:    comments,
		requestDate: requestDate,
		status:      ReturnPending,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreReturnRequest reconstructs a return request from persistence.
// Unlike NewReturnRequest it accepts any valid resolution status, since the
// stored request may already have been handled by support.
func RestoreReturnRequest(
	reason string, comments string, requestDate time.Time, status ReturnStatus,
) (ReturnRequest, error) {
	if reason == "" {
		return ReturnRequest{}, errs.NewValueIsRequiredError("reason")
	}
	if err := status.Validate(); err != nil {
		return ReturnRequest{}, err
	}

	return ReturnRequest{
		reason:      reason,
		comments:    comments,
		requestDate: requestDate,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the return request was created through a constructor.
func (r ReturnRequest) Validate() error {
	return r.guard.Validate(ErrReturnRequestIsNotConstructed)
}

// Reason returns why the customer wants to return the order.
func (r ReturnRequest) Reason() string {
	return r.reason
}

// Comments returns the customer's optional free-form comments.
func (r ReturnRequest) Comments() string {
	return r.comments
}

// RequestDate returns when the return was requested.
func (r ReturnRequest) RequestDate() time.Time {
	return r.requestDate
}

// Status returns the resolution state of the return request.
func (r ReturnRequest) Status() ReturnStatus {
	return r.status
}
