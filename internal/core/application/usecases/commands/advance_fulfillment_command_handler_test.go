package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Linen Shirt", 2199, "/images/linen-shirt.jpg", 1, "M")
	require.NoError(t, err)
	address, err := order.NewShippingAddress("Priya Nair", "+91 98765 43210", "14 Marine Drive, Mumbai, MH, 400001")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), status, time.Now().Add(-24*time.Hour), nil,
		2199+500, []order.Item{item}, address, order.PaymentCard, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func TestAdvanceFulfillmentCommandHandler_Handle_AdvancesAndAssignsTracking(t *testing.T) {
	ctx := t.Context()
	processing := restoredOrder(t, order.Processing)
	outForDelivery := restoredOrder(t, order.OutForDelivery)
	cmd := commands.NewAdvanceFulfillmentCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFulfillment", mock.Anything).Return([]*order.Order{processing, outForDelivery}, nil).Once(),
		repo.On("Update", mock.Anything, processing, order.Processing).Return(nil).Once(),
		repo.On("Update", mock.Anything, outForDelivery, order.OutForDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderStatusNotifier)
	notifier.On("PublishStatusChanged", mock.Anything, processing).Return(nil).Once()
	notifier.On("PublishStatusChanged", mock.Anything, outForDelivery).Return(nil).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Shipped, processing.Status())
	require.NotNil(t, processing.Tracking())
	require.Equal(t, order.Delivered, outForDelivery.Status())
	require.NotNil(t, outForDelivery.DeliveredAt())
	require.Nil(t, outForDelivery.Tracking())
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAdvanceFulfillmentCommandHandler_Handle_SkipsConcurrentlyChangedOrders(t *testing.T) {
	ctx := t.Context()
	contested := restoredOrder(t, order.Processing)
	clean := restoredOrder(t, order.Shipped)
	cmd := commands.NewAdvanceFulfillmentCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFulfillment", mock.Anything).Return([]*order.Order{contested, clean}, nil).Once(),
		repo.On("Update", mock.Anything, contested, order.Processing).Return(ports.ErrConcurrentOrderUpdate).Once(),
		repo.On("Update", mock.Anything, clean, order.Shipped).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderStatusNotifier)
	notifier.On("PublishStatusChanged", mock.Anything, clean).Return(nil).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	// The contested order is not announced; only the clean one is.
	notifier.AssertNumberOfCalls(t, "PublishStatusChanged", 1)
}

func TestAdvanceFulfillmentCommandHandler_Handle_NothingInFulfillment(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAdvanceFulfillmentCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFulfillment", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceFulfillmentCommandHandler(factory, new(MockOrderStatusNotifier))
	require.NoError(t, h.Handle(ctx, cmd))
}
