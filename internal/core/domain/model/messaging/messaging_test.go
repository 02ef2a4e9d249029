package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

func Test_NewContactMessage(t *testing.T) {
	receivedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	msg, err := NewContactMessage(
		kernel.NewUUID(),
		"Priya Nair",
		"priya@example.com",
		"Order delayed",
		"My order has been in transit for two weeks.",
		receivedAt,
	)

	require.NoError(t, err)
	assert.NoError(t, msg.Validate())
	assert.Equal(t, "Order delayed", msg.Subject())
	assert.Equal(t, receivedAt, msg.ReceivedAt())
}

func Test_NewContactMessage_Validation(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()

	tests := map[string]func() (*ContactMessage, error){
		"empty name": func() (*ContactMessage, error) {
			return NewContactMessage(id, "", "a@b.com", "Hi", "Hello", now)
		},
		"malformed email": func() (*ContactMessage, error) {
			return NewContactMessage(id, "Priya", "not-an-email", "Hi", "Hello", now)
		},
		"empty subject": func() (*ContactMessage, error) {
			return NewContactMessage(id, "Priya", "a@b.com", "", "Hello", now)
		},
		"empty body": func() (*ContactMessage, error) {
			return NewContactMessage(id, "Priya", "a@b.com", "Hi", "", now)
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			msg, err := create()
			assert.Error(t, err)
			assert.Nil(t, msg)
		})
	}
}

func Test_NewSubscription_NormalizesEmail(t *testing.T) {
	sub, err := NewSubscription(kernel.NewUUID(), "  Priya@Example.COM ", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", sub.Email())
}

func Test_NewSubscription_MalformedEmail(t *testing.T) {
	_, err := NewSubscription(kernel.NewUUID(), "not-an-email", time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
