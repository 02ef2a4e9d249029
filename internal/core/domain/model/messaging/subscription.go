package messaging

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrSubscriptionIsNotConstructed is returned when a Subscription instance
// was not created through the NewSubscription factory function.
var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription constructor")

// Subscription is a newsletter signup. Emails are normalized to lower case
// so the store never subscribes the same address twice.
type Subscription struct {
	id           kernel.UUID
	email        string
	subscribedAt time.Time

	isConstructed bool
}

// NewSubscription creates a newsletter subscription with a normalized email.
func NewSubscription(id kernel.UUID, email string, subscribedAt time.Time) (*Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if subscribedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("subscribedAt")
	}

	return &Subscription{
		id:            id,
		email:         email,
		subscribedAt:  subscribedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the subscription was created through a constructor.
func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

// ID returns the subscription identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// Email returns the normalized subscriber address.
func (s *Subscription) Email() string {
	return s.email
}

// SubscribedAt returns when the signup happened.
func (s *Subscription) SubscribedAt() time.Time {
	return s.subscribedAt
}
