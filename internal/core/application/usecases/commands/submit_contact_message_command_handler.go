package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/messaging"
)

// SubmitContactMessageCommandHandler handles contact form submissions.
type SubmitContactMessageCommandHandler struct {
	uowFactory MessagingUoWFactory
}

// NewSubmitContactMessageCommandHandler creates a handler for contact form
// submissions.
func NewSubmitContactMessageCommandHandler(uowFactory MessagingUoWFactory) SubmitContactMessageCommandHandler {
	return SubmitContactMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contact form submission.
func (h *SubmitContactMessageCommandHandler) Handle(ctx context.Context, cmd SubmitContactMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	message, err := messaging.NewContactMessage(
		cmd.MessageID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Subject(),
		cmd.Message(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.MessagingRepository().AddContactMessage(ctx, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
