package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Linen Shirt", 2199, "/images/linen-shirt.jpg", 1, "M")
	require.NoError(t, err)
	return item
}

func testAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	address, err := order.NewShippingAddress("Priya Nair", "+91 98765 43210", "14 Marine Drive, Mumbai, MH, 400001")
	require.NoError(t, err)
	return address
}

func testOrder(t *testing.T, customerID kernel.UUID, paymentMethod order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		[]order.Item{testItem(t)},
		testAddress(t),
		paymentMethod,
		2199+50,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T, customerID kernel.UUID, deliveredAt time.Time) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		order.Delivered,
		deliveredAt.Add(-72*time.Hour),
		&deliveredAt,
		2199+50,
		[]order.Item{testItem(t)},
		testAddress(t),
		order.PaymentCashOnDelivery,
		nil,
		nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("cash on delivery orders start in Processing", func(t *testing.T) {
		o := testOrder(t, customerID, order.PaymentCashOnDelivery)

		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, customerID, o.CustomerID())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.ReturnRequest())
	})

	t.Run("card orders start in Payment Pending", func(t *testing.T) {
		o := testOrder(t, customerID, order.PaymentCard)

		assert.Equal(t, order.PaymentPending, o.Status())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), customerID, nil, testAddress(t),
			order.PaymentCashOnDelivery, 1000, time.Now(),
		)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), customerID, []order.Item{testItem(t)}, testAddress(t),
			order.PaymentCashOnDelivery, 0, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unsupported payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), customerID, []order.Item{testItem(t)}, testAddress(t),
			order.PaymentMethod("cheque"), 1000, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_RequestCancellation(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("owner can cancel a Processing order", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)

		require.NoError(t, o.RequestCancellation(owner))
		assert.Equal(t, order.CancellationRequested, o.Status())
	})

	t.Run("owner can cancel a Shipped order", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)
		require.NoError(t, o.AdvanceFulfillment(time.Now()))
		require.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.RequestCancellation(owner))
		assert.Equal(t, order.CancellationRequested, o.Status())
	})

	t.Run("non-owner is rejected and the order is unchanged", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)

		err := o.RequestCancellation(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("second cancellation request is rejected by stage check", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)
		require.NoError(t, o.RequestCancellation(owner))

		err := o.RequestCancellation(owner)

		require.ErrorIs(t, err, errs.ErrInvalidStage)
		assert.Equal(t, order.CancellationRequested, o.Status())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := deliveredOrder(t, owner, time.Now())

		err := o.RequestCancellation(owner)

		require.ErrorIs(t, err, errs.ErrInvalidStage)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_RequestReturn(t *testing.T) {
	owner := kernel.NewUUID()
	reason := "The shirt arrived with a torn sleeve"

	t.Run("owner can return within the window", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-72*time.Hour))

		require.NoError(t, o.RequestReturn(owner, reason, "please arrange pickup", now))

		assert.Equal(t, order.ReturnRequested, o.Status())
		returnRequest := o.ReturnRequest()
		require.NotNil(t, returnRequest)
		assert.Equal(t, reason, returnRequest.Reason())
		assert.Equal(t, "please arrange pickup", returnRequest.Comments())
		assert.Equal(t, order.ReturnPending, returnRequest.Status())
		assert.Equal(t, now, returnRequest.RequestDate())
	})

	t.Run("comments default to empty string", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-time.Hour))

		require.NoError(t, o.RequestReturn(owner, reason, "", now))

		require.NotNil(t, o.ReturnRequest())
		assert.Equal(t, "", o.ReturnRequest().Comments())
	})

	t.Run("order delivered 8 days ago is outside the window", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-8*24*time.Hour))

		err := o.RequestReturn(owner, reason, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidStage)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.ReturnRequest())
	})

	t.Run("window boundary is strict", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-order.ReturnWindow))

		err := o.RequestReturn(owner, reason, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidStage)
	})

	t.Run("non-owner is rejected and the order is unchanged", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-72*time.Hour))

		err := o.RequestReturn(kernel.NewUUID(), reason, "", now)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.ReturnRequest())
	})

	t.Run("undelivered order cannot be returned", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)

		err := o.RequestReturn(owner, reason, "", time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStage)
	})

	t.Run("short reason is rejected and the order is unchanged", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-time.Hour))

		err := o.RequestReturn(owner, "too small", "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.ReturnRequest())
	})

	t.Run("second return request is rejected by stage check", func(t *testing.T) {
		now := time.Now()
		o := deliveredOrder(t, owner, now.Add(-time.Hour))
		require.NoError(t, o.RequestReturn(owner, reason, "", now))

		err := o.RequestReturn(owner, reason, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidStage)
		assert.Equal(t, order.ReturnRequested, o.Status())
	})
}

func TestOrder_AdvanceFulfillment(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("advances one stage per call and records delivery", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)
		deliveryTime := time.Now()

		require.NoError(t, o.AdvanceFulfillment(deliveryTime))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Nil(t, o.DeliveredAt())

		require.NoError(t, o.AdvanceFulfillment(deliveryTime))
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Nil(t, o.DeliveredAt())

		require.NoError(t, o.AdvanceFulfillment(deliveryTime))
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveryTime, *o.DeliveredAt())
	})

	t.Run("payment pending orders are not advanced", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCard)

		err := o.AdvanceFulfillment(time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStage)
		assert.Equal(t, order.PaymentPending, o.Status())
	})
}

func TestOrder_AssignTracking(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("tracking can be assigned once shipped", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)
		require.NoError(t, o.AdvanceFulfillment(time.Now()))

		tracking, err := order.NewTracking("BlueDart", "BD123456789")
		require.NoError(t, err)

		require.NoError(t, o.AssignTracking(tracking))
		require.NotNil(t, o.Tracking())
		assert.Equal(t, "BlueDart", o.Tracking().Provider())
		assert.Equal(t, "BD123456789", o.Tracking().Number())
	})

	t.Run("tracking cannot be assigned before shipping", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)

		tracking, err := order.NewTracking("BlueDart", "BD123456789")
		require.NoError(t, err)

		require.ErrorIs(t, o.AssignTracking(tracking), errs.ErrInvalidStage)
		assert.Nil(t, o.Tracking())
	})
}

func TestOrder_IsReturnEligible(t *testing.T) {
	owner := kernel.NewUUID()
	now := time.Now()

	t.Run("delivered order inside the window is eligible", func(t *testing.T) {
		o := deliveredOrder(t, owner, now.Add(-72*time.Hour))

		assert.True(t, o.IsReturnEligible(now))
	})

	t.Run("delivered order outside the window is not eligible", func(t *testing.T) {
		o := deliveredOrder(t, owner, now.Add(-8*24*time.Hour))

		assert.False(t, o.IsReturnEligible(now))
	})

	t.Run("order with an existing return request is not eligible", func(t *testing.T) {
		o := deliveredOrder(t, owner, now.Add(-time.Hour))
		require.NoError(t, o.RequestReturn(owner, "The shirt arrived with a torn sleeve", "", now))

		assert.False(t, o.IsReturnEligible(now))
	})

	t.Run("undelivered order is not eligible", func(t *testing.T) {
		o := testOrder(t, owner, order.PaymentCashOnDelivery)

		assert.False(t, o.IsReturnEligible(now))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a full aggregate including return request", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		placedAt := time.Now().Add(-96 * time.Hour)
		deliveredAt := time.Now().Add(-24 * time.Hour)
		requestDate := time.Now().Add(-2 * time.Hour)

		returnRequest, err := order.RestoreReturnRequest(
			"The fabric color does not match the photos", "refund preferred", requestDate, order.ReturnApproved,
		)
		require.NoError(t, err)

		tracking, err := order.NewTracking("Delhivery", "DL987654321")
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			id, customerID, order.ReturnRequested, placedAt, &deliveredAt, 2199,
			[]order.Item{testItem(t)}, testAddress(t), order.PaymentCard,
			&tracking, &returnRequest,
		)

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
		assert.Equal(t, order.ReturnRequested, o.Status())
		require.NotNil(t, o.ReturnRequest())
		assert.Equal(t, order.ReturnApproved, o.ReturnRequest().Status())
		require.NotNil(t, o.Tracking())
		assert.Equal(t, "Delhivery", o.Tracking().Provider())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.Unknown, time.Now(), nil, 1000,
			[]order.Item{testItem(t)}, testAddress(t), order.PaymentCashOnDelivery, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
