package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PaymentPending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.OutForDelivery))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
		assert.Equal(t, 7, int(order.CancellationRequested))
		assert.Equal(t, 8, int(order.ReturnRequested))
	})
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.Unknown:               "Unknown",
		order.PaymentPending:        "Payment Pending",
		order.Processing:            "Processing",
		order.Shipped:               "Shipped",
		order.OutForDelivery:        "Out for Delivery",
		order.Delivered:             "Delivered",
		order.Cancelled:             "Cancelled",
		order.CancellationRequested: "Cancellation Requested",
		order.ReturnRequested:       "Return Requested",
	}

	for status, str := range expected {
		t.Run(fmt.Sprintf("should render %q", str), func(t *testing.T) {
			assert.Equal(t, str, status.String())
		})
	}

	t.Run("should render invalid values as Unknown", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.PaymentPending,
			order.Processing,
			order.Shipped,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
			order.CancellationRequested,
			order.ReturnRequested,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_RequestCancellation(t *testing.T) {
	t.Run("should allow cancellation request from Processing and Shipped", func(t *testing.T) {
		for _, status := range []order.Status{order.Processing, order.Shipped} {
			t.Run(status.String(), func(t *testing.T) {
				newStatus, err := status.RequestCancellation()

				require.NoError(t, err)
				assert.Equal(t, order.CancellationRequested, newStatus)
			})
		}
	})

	t.Run("should reject cancellation request from other statuses", func(t *testing.T) {
		blocked := []order.Status{
			order.Unknown,
			order.PaymentPending,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
			order.CancellationRequested,
			order.ReturnRequested,
		}

		for _, status := range blocked {
			t.Run(status.String(), func(t *testing.T) {
				newStatus, err := status.RequestCancellation()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidStage)
				assert.Equal(t, order.Status(0), newStatus)
			})
		}
	})
}

func TestStatus_RequestReturn(t *testing.T) {
	t.Run("should allow return request from Delivered", func(t *testing.T) {
		newStatus, err := order.Delivered.RequestReturn()

		require.NoError(t, err)
		assert.Equal(t, order.ReturnRequested, newStatus)
	})

	t.Run("should reject return request from other statuses", func(t *testing.T) {
		blocked := []order.Status{
			order.Unknown,
			order.PaymentPending,
			order.Processing,
			order.Shipped,
			order.OutForDelivery,
			order.Cancelled,
			order.CancellationRequested,
			order.ReturnRequested,
		}

		for _, status := range blocked {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.RequestReturn()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidStage)
			})
		}
	})
}

func TestStatus_Advance(t *testing.T) {
	t.Run("should advance along the fulfillment path", func(t *testing.T) {
		steps := map[order.Status]order.Status{
			order.Processing:     order.Shipped,
			order.Shipped:        order.OutForDelivery,
			order.OutForDelivery: order.Delivered,
		}

		for from, to := range steps {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				newStatus, err := from.Advance()

				require.NoError(t, err)
				assert.Equal(t, to, newStatus)
			})
		}
	})

	t.Run("should not advance outside the fulfillment path", func(t *testing.T) {
		blocked := []order.Status{
			order.Unknown,
			order.PaymentPending,
			order.Delivered,
			order.Cancelled,
			order.CancellationRequested,
			order.ReturnRequested,
		}

		for _, status := range blocked {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.Advance()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidStage)
			})
		}
	})
}

func TestStatus_IsInFulfillment(t *testing.T) {
	assert.True(t, order.Processing.IsInFulfillment())
	assert.True(t, order.Shipped.IsInFulfillment())
	assert.True(t, order.OutForDelivery.IsInFulfillment())

	assert.False(t, order.PaymentPending.IsInFulfillment())
	assert.False(t, order.Delivered.IsInFulfillment())
	assert.False(t, order.Cancelled.IsInFulfillment())
	assert.False(t, order.CancellationRequested.IsInFulfillment())
	assert.False(t, order.ReturnRequested.IsInFulfillment())
}
