package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrSubmitContactMessageCommandIsNotConstructed = errors.New(
		"SubmitContactMessageCommand must be created via NewSubmitContactMessageCommand constructor",
	)
	ErrSubjectIsRequired = errors.New("subject is required")
	ErrMessageIsRequired = errors.New("message is required")
)

// SubmitContactMessageCommand represents a contact form submission.
type SubmitContactMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	name      string
	email     string
	subject   string
	message   string

	guard guard.ConstructorGuard
}

// NewSubmitContactMessageCommand creates a command to record a contact form
// submission.
func NewSubmitContactMessageCommand(
	messageID kernel.UUID,
	name string,
	email string,
	subject string,
	message string,
) (SubmitContactMessageCommand, error) {
	submitCommand := SubmitContactMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setMessageID(messageID),
		submitCommand.setName(name),
		submitCommand.setEmail(email),
		submitCommand.setSubject(subject),
		submitCommand.setMessage(message),
	); err != nil {
		return SubmitContactMessageCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitContactMessageCommand) Validate() error {
	return c.guard.Validate(ErrSubmitContactMessageCommandIsNotConstructed)
}

// MessageID returns the identifier assigned to the submission.
func (c SubmitContactMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// Name returns the sender's name.
func (c SubmitContactMessageCommand) Name() string {
	return c.name
}

// Email returns the sender's reply address.
func (c SubmitContactMessageCommand) Email() string {
	return c.email
}

// Subject returns the message subject.
func (c SubmitContactMessageCommand) Subject() string {
	return c.subject
}

// Message returns the message text.
func (c SubmitContactMessageCommand) Message() string {
	return c.message
}

func (c *SubmitContactMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}

	c.messageID = messageID
	return nil
}

func (c *SubmitContactMessageCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SubmitContactMessageCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SubmitContactMessageCommand) setSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrSubjectIsRequired
	}

	c.subject = subject
	return nil
}

func (c *SubmitContactMessageCommand) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
