package services_test

import (
	"testing"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"
	"resale/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustManager(t *testing.T, name string) *manager.Manager {
	t.Helper()
	m, err := manager.NewManager(kernel.NewUUID(), name, "manager", true)
	require.NoError(t, err)
	return m
}

func TestAssignmentBalancer_PickManager(t *testing.T) {
	balancer := services.NewAssignmentBalancer()

	t.Run("picks strictly least loaded", func(t *testing.T) {
		m1 := mustManager(t, "Alice")
		m2 := mustManager(t, "Bob")
		m3 := mustManager(t, "Carol")
		pool := []*manager.Manager{m1, m2, m3}
		load := map[kernel.UUID]int{
			m1.ID(): 3,
			m2.ID(): 1,
			m3.ID(): 2,
		}

		picked := balancer.PickManager(load, pool)

		require.NotNil(t, picked)
		assert.True(t, picked.IsEqual(m2))
	})

	t.Run("ties break by pool order", func(t *testing.T) {
		m1 := mustManager(t, "Alice")
		m2 := mustManager(t, "Bob")
		pool := []*manager.Manager{m1, m2}
		load := map[kernel.UUID]int{m1.ID(): 1, m2.ID(): 1}

		picked := balancer.PickManager(load, pool)

		require.NotNil(t, picked)
		assert.True(t, picked.IsEqual(m1))
	})

	t.Run("missing load entries count as zero", func(t *testing.T) {
		m1 := mustManager(t, "Alice")
		m2 := mustManager(t, "Bob")
		pool := []*manager.Manager{m1, m2}
		load := map[kernel.UUID]int{m1.ID(): 2}

		picked := balancer.PickManager(load, pool)

		require.NotNil(t, picked)
		assert.True(t, picked.IsEqual(m2))
	})

	t.Run("caller-side increments rotate assignment", func(t *testing.T) {
		m1 := mustManager(t, "Alice")
		m2 := mustManager(t, "Bob")
		m3 := mustManager(t, "Carol")
		pool := []*manager.Manager{m1, m2, m3}
		load := map[kernel.UUID]int{}

		var picks []*manager.Manager
		for i := 0; i < 4; i++ {
			picked := balancer.PickManager(load, pool)
			require.NotNil(t, picked)
			load[picked.ID()]++
			picks = append(picks, picked)
		}

		assert.True(t, picks[0].IsEqual(m1))
		assert.True(t, picks[1].IsEqual(m2))
		assert.True(t, picks[2].IsEqual(m3))
		assert.True(t, picks[3].IsEqual(m1))
	})

	t.Run("empty pool yields nil", func(t *testing.T) {
		assert.Nil(t, balancer.PickManager(map[kernel.UUID]int{}, nil))
	})
}
