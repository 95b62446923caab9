package ports

import (
	"context"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"
)

// SlaBreach describes an order that has exceeded its status dwell budget.
type SlaBreach struct {
	OrderCode       string
	Status          order.Status
	AgeHours        float64
	SlaHours        float64
	AssignedManager *kernel.UUID
}

// ComplianceBlock describes an order cancelled for violating price policy.
type ComplianceBlock struct {
	OrderCode string
	PriceEUR  float64
	Reason    order.CancelReason
}

// SignalRecorder publishes operator-facing signals raised during a run.
// Like the audit trail, signals are advisory: recording failures are
// logged and swallowed, never propagated into the run outcome.
type SignalRecorder interface {
	RecordSlaBreach(ctx context.Context, orderID kernel.UUID, breach SlaBreach) error
	RecordComplianceBlock(ctx context.Context, orderID kernel.UUID, block ComplianceBlock) error
}
