package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, "priya@example.com", "longenoughpassword", "Priya Nair", "")
	require.NoError(t, err)

	var created *customer.Customer
	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "priya@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "priya@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*customer.Customer) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	require.Equal(t, customerID, created.ID())
	require.True(t, created.VerifyPassword("longenoughpassword"))
}

func TestRegisterCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	existing, err := customer.NewCustomer(kernel.NewUUID(), "priya@example.com", "longenoughpassword", "Priya Nair", "")
	require.NoError(t, err)
	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "priya@example.com", "anotherpassword", "Impostor", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "priya@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
}

func TestRegisterCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterCustomerCommand{} // not constructed properly
	h := commands.NewRegisterCustomerCommandHandler(new(MockCustomerUoWFactory))
	require.Error(t, h.Handle(ctx, cmd))
}
