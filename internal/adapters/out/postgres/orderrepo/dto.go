// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The snapshot column carries the raw listing payload captured at booking
// time as jsonb; the domain only ever reads prices out of it.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code             string     `gorm:"uniqueIndex;not null"`
	Status           string     `gorm:"index;not null"`
	AssignedManager  *uuid.UUID `gorm:"type:uuid;index"`
	ListingPriceEUR  *float64
	Snapshot         []byte `gorm:"type:jsonb"`
	CancelReasonCode *string
	SupersededBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"index;not null"`
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
// An unreadable snapshot is dropped rather than failing the read: the order
// must still surface in the sweep even when its captured payload is garbage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var assigned *kernel.UUID
	if dto.AssignedManager != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.AssignedManager)[:])
		if mErr != nil {
			return nil, mErr
		}
		assigned = &mID
	}

	var supersededBy *kernel.UUID
	if dto.SupersededBy != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SupersededBy)[:])
		if sErr != nil {
			return nil, sErr
		}
		supersededBy = &sID
	}

	var snapshot *order.Snapshot
	if len(dto.Snapshot) > 0 {
		var s order.Snapshot
		if json.Unmarshal(dto.Snapshot, &s) == nil {
			snapshot = &s
		}
	}

	var cancelReason *order.CancelReason
	if dto.CancelReasonCode != nil {
		reason := order.NormalizeCancelReason(*dto.CancelReasonCode)
		cancelReason = &reason
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.Status,
		assigned,
		dto.CreatedAt,
		dto.ListingPriceEUR,
		snapshot,
		cancelReason,
		supersededBy,
	)
}
