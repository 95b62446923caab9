package ports

import (
	"context"

	"resale/internal/core/domain/model/manager"
)

// ManagerRepository defines the read contract for the manager pool.
type ManagerRepository interface {
	// GetAllActive retrieves every active account eligible for order
	// assignment: managers and admins. Role preference is applied later
	// by manager.NormalizePool, not here.
	GetAllActive(ctx context.Context) ([]*manager.Manager, error)
}
