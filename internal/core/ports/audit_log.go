package ports

import (
	"context"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"
)

// Audit action names written by the autopilot. Kept stable: downstream
// reporting filters on them.
const (
	AuditActionAutoAssign       = "ai_rop_auto_assign"
	AuditActionSLABreach        = "ai_rop_sla_breach"
	AuditActionBlockOutOfPolicy = "ai_rop_block_out_of_policy"
)

// AuditLog defines the append-only trail of autopilot decisions.
// Entries are advisory: a failed append must never roll back the
// state change it describes.
type AuditLog interface {
	// AppendStatusEvent records a status transition on an order.
	AppendStatusEvent(ctx context.Context, orderID kernel.UUID, from, to order.Status) error

	// AppendAuditEntry records an autopilot decision with a free-form
	// payload. action is one of the AuditAction constants.
	AppendAuditEntry(ctx context.Context, action string, orderID kernel.UUID, payload map[string]any) error
}
