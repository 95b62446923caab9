// Package ports defines the contracts between the core and infrastructure.
// These interfaces establish the persistence and side-effect boundaries of
// the fulfillment domain, enabling dependency inversion and testability.
package ports

import (
	"context"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All read methods exclude orders in terminal statuses: the autopilot only
// ever operates on work still in flight.
type OrderRepository interface {
	// GetActiveAssignments retrieves a lightweight projection of every
	// non-terminal order: id, assigned manager and status. Used to build
	// the current per-manager load picture without hydrating full rows.
	GetActiveAssignments(ctx context.Context) ([]order.Assignment, error)

	// GetAllActive retrieves all non-terminal orders ordered by creation
	// time ascending, so the oldest work is always handled first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus moves an order to a new status in a single update.
	// When the new status is a cancellation, cancelReason records why.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, id kernel.UUID, newStatus order.Status, cancelReason *order.CancelReason) error

	// AssignManager sets the order's assigned manager and, when newStatus
	// is non-nil, advances the status in the same update. The two writes
	// must land atomically: an order may never be observed assigned but
	// not advanced.
	AssignManager(ctx context.Context, id kernel.UUID, managerID kernel.UUID, newStatus *order.Status) error
}
