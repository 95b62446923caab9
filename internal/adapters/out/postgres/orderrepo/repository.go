package orderrepo

import (
	"context"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"
	"resale/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every mutation is a single UPDATE with its own WHERE clause; there is no
// cross-call transaction because no autopilot decision spans two rows.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func terminalStatusStrings() []string {
	terminal := order.TerminalStatuses()
	out := make([]string, 0, len(terminal))
	for _, s := range terminal {
		out = append(out, string(s))
	}
	return out
}

// GetActiveAssignments retrieves the id, manager and status of every
// non-terminal order.
func (r *GormOrderRepository) GetActiveAssignments(ctx context.Context) ([]order.Assignment, error) {
	var rows []struct {
		ID              uuid.UUID
		AssignedManager *uuid.UUID
		Status          string
	}

	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("id", "assigned_manager", "status").
		Where("status NOT IN ?", terminalStatusStrings()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]order.Assignment, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		var managerID *kernel.UUID
		if row.AssignedManager != nil {
			mID, mErr := kernel.UUIDFromBytes((*row.AssignedManager)[:])
			if mErr != nil {
				return nil, mErr
			}
			managerID = &mID
		}

		status, ok := order.NormalizeStatus(row.Status)
		if !ok {
			status = order.Status(row.Status)
		}
		assignments = append(assignments, order.Assignment{
			OrderID: id,
			Manager: managerID,
			Status:  status,
		})
	}

	return assignments, nil
}

// GetAllActive retrieves every non-terminal order, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO

	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", terminalStatusStrings()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus moves an order to a new status in one UPDATE.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	newStatus order.Status,
	cancelReason *order.CancelReason,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		"status":     string(newStatus),
		"updated_at": time.Now().UTC(),
	}
	if cancelReason != nil {
		values["cancel_reason_code"] = string(*cancelReason)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// AssignManager sets the assigned manager and, when newStatus is non-nil,
// advances the status in the same UPDATE so both land atomically.
func (r *GormOrderRepository) AssignManager(
	ctx context.Context,
	id kernel.UUID,
	managerID kernel.UUID,
	newStatus *order.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := managerID.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		"assigned_manager": managerID.Bytes(),
		"updated_at":       time.Now().UTC(),
	}
	if newStatus != nil {
		values["status"] = string(*newStatus)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
