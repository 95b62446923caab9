package services

import (
	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"
)

// AssignmentBalancer selects the least-loaded manager for an unassigned
// order.
//
// Selection rules:
//   - the manager with the strictly smallest load count wins
//   - ties break by pool iteration order (first encountered wins), which
//     keeps assignment deterministic
//   - the caller increments the load map after a successful assignment so the
//     next pick within the same pass sees updated counts (greedy online
//     balancing, not a global optimum)
type AssignmentBalancer struct{}

// NewAssignmentBalancer creates a new AssignmentBalancer instance.
func NewAssignmentBalancer() AssignmentBalancer {
	return AssignmentBalancer{}
}

// PickManager returns the least-loaded manager from the pool, or nil when
// the pool is empty. Managers missing from the load map count as zero load.
func (AssignmentBalancer) PickManager(load map[kernel.UUID]int, pool []*manager.Manager) *manager.Manager {
	var (
		candidate     *manager.Manager
		candidateLoad int
	)

	for _, m := range pool {
		if m == nil {
			continue
		}
		current := load[m.ID()]
		if candidate == nil || current < candidateLoad {
			candidate = m
			candidateLoad = current
		}
	}

	return candidate
}
