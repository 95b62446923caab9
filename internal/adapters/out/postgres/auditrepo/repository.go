package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	auditSource   = "ai_rop"
	auditEntity   = "orders"
	auditSeverity = "info"
)

// GormAuditLog implements ports.AuditLog using GORM. Appends are
// best-effort by contract; the caller decides what to do with failures.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// AppendStatusEvent records a status transition on an order.
func (r *GormAuditLog) AppendStatusEvent(ctx context.Context, orderID kernel.UUID, from, to order.Status) error {
	dto := StatusEventDTO{
		ID:        uuid.New(),
		OrderID:   orderID.Bytes(),
		FromState: string(from),
		ToState:   string(to),
		Source:    auditSource,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendAuditEntry records an autopilot decision with its payload.
func (r *GormAuditLog) AppendAuditEntry(ctx context.Context, action string, orderID kernel.UUID, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:        uuid.New(),
		Action:    action,
		Entity:    auditEntity,
		EntityID:  orderID.Bytes(),
		Severity:  auditSeverity,
		Source:    auditSource,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
