package manager_test

import (
	"testing"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustManager(t *testing.T, name, role string, active bool) *manager.Manager {
	t.Helper()
	m, err := manager.NewManager(kernel.NewUUID(), name, role, active)
	require.NoError(t, err)
	return m
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, manager.RoleManager, manager.NormalizeRole(" Manager "))
	assert.Equal(t, manager.RoleAdmin, manager.NormalizeRole("ADMIN"))
	assert.Equal(t, manager.RoleOther, manager.NormalizeRole("intern"))
	assert.Equal(t, manager.RoleOther, manager.NormalizeRole(""))
}

func TestNewManager(t *testing.T) {
	t.Run("rejects zero identity", func(t *testing.T) {
		_, err := manager.NewManager(kernel.UUID{}, "Alice", "manager", true)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m manager.Manager
		require.ErrorIs(t, m.Validate(), manager.ErrManagerIsNotConstructed)
	})
}

func TestNormalizePool(t *testing.T) {
	t.Run("prefers manager-role accounts when present", func(t *testing.T) {
		m1 := mustManager(t, "Alice", "manager", true)
		m2 := mustManager(t, "Bob", "admin", true)
		m3 := mustManager(t, "Carol", "manager", true)

		pool := manager.NormalizePool([]*manager.Manager{m2, m1, m3})

		require.Len(t, pool, 2)
		assert.True(t, pool[0].IsEqual(m1))
		assert.True(t, pool[1].IsEqual(m3))
	})

	t.Run("falls back to full set when no manager-role accounts", func(t *testing.T) {
		a1 := mustManager(t, "Bob", "admin", true)
		a2 := mustManager(t, "Dave", "admin", true)

		pool := manager.NormalizePool([]*manager.Manager{a1, a2})

		require.Len(t, pool, 2)
	})

	t.Run("drops inactive and duplicate entries", func(t *testing.T) {
		m1 := mustManager(t, "Alice", "manager", true)
		inactive := mustManager(t, "Eve", "manager", false)

		pool := manager.NormalizePool([]*manager.Manager{m1, inactive, m1, nil})

		require.Len(t, pool, 1)
		assert.True(t, pool[0].IsEqual(m1))
	})

	t.Run("empty input yields empty pool", func(t *testing.T) {
		assert.Empty(t, manager.NormalizePool(nil))
	})
}
