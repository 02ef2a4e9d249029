package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
)

func TestNewRequestCancellationCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()

	cmd, err := commands.NewRequestCancellationCommand(orderID, requesterID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, requesterID, cmd.RequesterID())
}

func TestNewRequestCancellationCommand_EmptyIDs(t *testing.T) {
	_, err := commands.NewRequestCancellationCommand(kernel.UUID{}, kernel.NewUUID())
	assert.Error(t, err)

	_, err = commands.NewRequestCancellationCommand(kernel.NewUUID(), kernel.UUID{})
	assert.Error(t, err)
}

func TestRequestCancellationCommand_NotConstructed(t *testing.T) {
	var cmd commands.RequestCancellationCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRequestCancellationCommandIsNotConstructed)
}
