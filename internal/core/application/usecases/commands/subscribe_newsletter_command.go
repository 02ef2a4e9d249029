package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSubscribeNewsletterCommandIsNotConstructed = errors.New(
	"SubscribeNewsletterCommand must be created via NewSubscribeNewsletterCommand constructor",
)

// SubscribeNewsletterCommand represents a newsletter signup.
type SubscribeNewsletterCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID
	email          string

	guard guard.ConstructorGuard
}

// NewSubscribeNewsletterCommand creates a command to subscribe an email to
// the newsletter.
func NewSubscribeNewsletterCommand(subscriptionID kernel.UUID, email string) (SubscribeNewsletterCommand, error) {
	subscribeCommand := SubscribeNewsletterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subscribeCommand.setSubscriptionID(subscriptionID),
		subscribeCommand.setEmail(email),
	); err != nil {
		return SubscribeNewsletterCommand{}, err
	}

	return subscribeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubscribeNewsletterCommand) Validate() error {
	return c.guard.Validate(ErrSubscribeNewsletterCommandIsNotConstructed)
}

// SubscriptionID returns the identifier assigned to the subscription.
func (c SubscribeNewsletterCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

// Email returns the subscriber's address.
func (c SubscribeNewsletterCommand) Email() string {
	return c.email
}

func (c *SubscribeNewsletterCommand) setSubscriptionID(subscriptionID kernel.UUID) error {
	if err := subscriptionID.Validate(); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	return nil
}

func (c *SubscribeNewsletterCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
