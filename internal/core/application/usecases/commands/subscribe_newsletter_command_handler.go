package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/messaging"
)

// SubscribeNewsletterCommandHandler handles newsletter signups.
// Subscribing an already subscribed address is a no-op at the persistence
// layer, so repeat signups succeed quietly.
type SubscribeNewsletterCommandHandler struct {
	uowFactory MessagingUoWFactory
}

// NewSubscribeNewsletterCommandHandler creates a handler for newsletter
// signups.
func NewSubscribeNewsletterCommandHandler(uowFactory MessagingUoWFactory) SubscribeNewsletterCommandHandler {
	return SubscribeNewsletterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the newsletter signup.
func (h *SubscribeNewsletterCommandHandler) Handle(ctx context.Context, cmd SubscribeNewsletterCommand) error {
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

	subscription, err := messaging.NewSubscription(cmd.SubscriptionID(), cmd.Email(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.MessagingRepository().AddSubscription(ctx, subscription); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
