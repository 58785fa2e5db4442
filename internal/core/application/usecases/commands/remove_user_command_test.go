package commands_test

import (
	"testing"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveUserCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		// When
		cmd, err := commands.NewRemoveUserCommand(mustNewID(t, 100), mustNewID(t, 2))

		// Then
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ActingUserID().IsEqual(mustNewID(t, 100)))
		assert.True(t, cmd.UserID().IsEqual(mustNewID(t, 2)))
	})

	t.Run("rejects_removing_own_account", func(t *testing.T) {
		// When
		_, err := commands.NewRemoveUserCommand(mustNewID(t, 100), mustNewID(t, 100))

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrCannotRemoveSelf)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects_zero_acting_user_id", func(t *testing.T) {
		// When
		_, err := commands.NewRemoveUserCommand(kernel.ID{}, mustNewID(t, 2))

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_user_id", func(t *testing.T) {
		// When
		_, err := commands.NewRemoveUserCommand(mustNewID(t, 100), kernel.ID{})

		// Then
		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		// Given
		var cmd commands.RemoveUserCommand

		// Then
		require.ErrorIs(t, cmd.Validate(), commands.ErrRemoveUserCommandIsNotConstructed)
	})
}
