package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

func deliveredOrder(t *testing.T, customerID kernel.UUID, deliveredAgo time.Duration) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Linen Shirt", 2199, "/images/linen-shirt.jpg", 1, "M")
	require.NoError(t, err)
	address, err := order.NewShippingAddress("Priya Nair", "+91 98765 43210", "14 Marine Drive, Mumbai, MH, 400001")
	require.NoError(t, err)

	deliveredAt := time.Now().Add(-deliveredAgo)
	placedAt := deliveredAt.Add(-72 * time.Hour)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, order.Delivered, placedAt, &deliveredAt,
		2199+500, []order.Item{item}, address, order.PaymentCard, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestRequestReturnCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := deliveredOrder(t, customerID, 48*time.Hour)
	cmd, err := commands.NewRequestReturnCommand(o.ID(), customerID, "The size runs small", "Would prefer a refund")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.Delivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderStatusNotifier)
	notifier.On("PublishStatusChanged", mock.Anything, o).Return(nil).Once()

	h := commands.NewRequestReturnCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.ReturnRequested, o.Status())
	require.NotNil(t, o.ReturnRequest())
	require.Equal(t, order.ReturnPending, o.ReturnRequest().Status())
}

func TestRequestReturnCommandHandler_Handle_WindowExpired(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := deliveredOrder(t, customerID, 8*24*time.Hour)
	cmd, err := commands.NewRequestReturnCommand(o.ID(), customerID, "The size runs small", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestReturnCommandHandler(factory, new(MockOrderStatusNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStage)
	require.Equal(t, order.Delivered, o.Status())
}

func TestRequestReturnCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	o := deliveredOrder(t, kernel.NewUUID(), 48*time.Hour)
	cmd, err := commands.NewRequestReturnCommand(o.ID(), kernel.NewUUID(), "The size runs small", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestReturnCommandHandler(factory, new(MockOrderStatusNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestRequestReturnCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RequestReturnCommand{} // not constructed properly
	h := commands.NewRequestReturnCommandHandler(new(MockOrderUoWFactory), new(MockOrderStatusNotifier))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestNewRequestReturnCommand_ShortReason(t *testing.T) {
	_, err := commands.NewRequestReturnCommand(kernel.NewUUID(), kernel.NewUUID(), "too short", "")
	require.ErrorIs(t, err, commands.ErrReturnReasonIsTooShort)
}

func TestNewRequestReturnCommand_TrimsReason(t *testing.T) {
	cmd, err := commands.NewRequestReturnCommand(kernel.NewUUID(), kernel.NewUUID(), "  The size runs small  ", "  comment  ")
	require.NoError(t, err)
	require.Equal(t, "The size runs small", cmd.Reason())
	require.Equal(t, "comment", cmd.Comments())
}
