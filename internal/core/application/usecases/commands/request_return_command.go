package commands

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrRequestReturnCommandIsNotConstructed = errors.New(
		"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
	)
	ErrReturnReasonIsTooShort = fmt.Errorf(
		"reason must be at least %d characters", order.MinReturnReasonLength,
	)
)

// RequestReturnCommand represents a customer's request to return a
// delivered order. The reason is mandatory and must carry enough detail;
// comments are optional.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	reason      string
	comments    string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a command to request a return for an
// order on behalf of the given customer. The reason must be at least 10
// characters after trimming.
func NewRequestReturnCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	reason string,
	comments string,
) (RequestReturnCommand, error) {
	returnCommand := RequestReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setRequesterID(requesterID),
		returnCommand.setReason(reason),
	); err != nil {
		return RequestReturnCommand{}, err
	}

	returnCommand.comments = strings.TrimSpace(comments)

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to return.
func (c RequestReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the customer making the request.
func (c RequestReturnCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Reason returns the return reason.
func (c RequestReturnCommand) Reason() string {
	return c.reason
}

// Comments returns the optional free-form comments.
func (c RequestReturnCommand) Comments() string {
	return c.comments
}

func (c *RequestReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestReturnCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *RequestReturnCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) < order.MinReturnReasonLength {
		return ErrReturnReasonIsTooShort
	}

	c.reason = reason
	return nil
}
