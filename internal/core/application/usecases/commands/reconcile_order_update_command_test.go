package commands_test

import (
	"testing"

	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileOrderUpdateCommand(t *testing.T) {
	cmd, err := commands.NewReconcileOrderUpdateCommand(newNotification(t, "R100", "shipped"))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "R100", cmd.Notification().OrderNumber())

	_, err = commands.NewReconcileOrderUpdateCommand(notification.Notification{})
	require.ErrorIs(t, err, notification.ErrNotificationIsNotConstructed)
}

func TestReconcileOrderUpdateCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.ReconcileOrderUpdateCommand
	assert.Equal(t, commands.ErrReconcileOrderUpdateCommandIsNotConstructed, cmd.Validate())
}
