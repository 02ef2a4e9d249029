// Package messaging covers the storefront's inbound communication: contact
// form messages and newsletter subscriptions.
package messaging

import (
	"errors"
	"regexp"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrContactMessageIsNotConstructed is returned when a ContactMessage
// instance was not created through the NewContactMessage factory function.
var ErrContactMessageIsNotConstructed = errors.New("ContactMessage must be created via NewContactMessage constructor")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactMessage is a submission from the storefront contact form.
type ContactMessage struct {
	id         kernel.UUID
	name       string
	email      string
	subject    string
	body       string
	receivedAt time.Time

	isConstructed bool
}

// NewContactMessage creates a contact form submission.
func NewContactMessage(id kernel.UUID, name string, email string, subject string, body string, receivedAt time.Time) (*ContactMessage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if subject == "" {
		return nil, errs.NewValueIsRequiredError("subject")
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if receivedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("receivedAt")
	}

	return &ContactMessage{
		id:            id,
		name:          name,
		email:         email,
		subject:       subject,
		body:          body,
		receivedAt:    receivedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the message was created through a constructor.
func (m *ContactMessage) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrContactMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m *ContactMessage) ID() kernel.UUID {
	return m.id
}

// Name returns the sender's name.
func (m *ContactMessage) Name() string {
	return m.name
}

// Email returns the sender's reply address.
func (m *ContactMessage) Email() string {
	return m.email
}

// Subject returns the message subject.
func (m *ContactMessage) Subject() string {
	return m.subject
}

// Body returns the message text.
func (m *ContactMessage) Body() string {
	return m.body
}

// ReceivedAt returns when the message was submitted.
func (m *ContactMessage) ReceivedAt() time.Time {
	return m.receivedAt
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}
