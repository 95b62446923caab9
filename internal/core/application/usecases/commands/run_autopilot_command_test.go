package commands_test

import (
	"testing"

	"resale/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunAutopilotCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewRunAutopilotCommand("cron", true)

		require.NoError(t, err)
		assert.Equal(t, "cron", cmd.Trigger())
		assert.True(t, cmd.SyncLocal())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("requires trigger", func(t *testing.T) {
		_, err := commands.NewRunAutopilotCommand("", false)

		require.Error(t, err)
	})

	t.Run("default constructed command fails validation", func(t *testing.T) {
		var cmd commands.RunAutopilotCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRunAutopilotCommandIsNotConstructed)
	})
}
