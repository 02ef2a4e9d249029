package commands

import (
	"context"

	"storefront/internal/core/domain/model/customer"
)

// AddAddressCommandHandler handles saving addresses to a customer's address
// book. Default handling (first address, demotion of the previous default)
// is the Customer aggregate's responsibility.
type AddAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewAddAddressCommandHandler creates a handler for address book additions.
func NewAddAddressCommandHandler(uowFactory CustomerUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address addition command.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
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

	customerRepo := uow.CustomerRepository()
	account, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	address, err := customer.NewAddress(cmd.AddressID(), cmd.Label(), cmd.Recipient(), cmd.Line(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = account.AddAddress(address, cmd.MakeDefault()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
