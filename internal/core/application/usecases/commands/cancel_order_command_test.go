package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(customerID, orderID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewCancelOrderCommand_MissingIDs(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{}, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestCancelOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
