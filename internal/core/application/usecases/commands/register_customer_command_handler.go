package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when a signup uses an email that
// already belongs to an account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterCustomerCommandHandler handles account signup.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for account signup.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command. Rejects duplicate emails before
// creating the account.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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
	_, err := customerRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, err := customer.NewCustomer(cmd.CustomerID(), cmd.Email(), cmd.Password(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
