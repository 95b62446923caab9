// Package auditrepo persists the autopilot's append-only decision trail:
// one table for status transitions and one for free-form audit entries.
package auditrepo

import (
	"time"

	"github.com/google/uuid"
)

// StatusEventDTO records one status transition on an order.
type StatusEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	FromState string    `gorm:"not null"`
	ToState   string    `gorm:"not null"`
	Source    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for status events.
func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

// AuditEntryDTO records one autopilot decision with its payload as jsonb.
type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"index;not null"`
	Entity    string    `gorm:"not null"`
	EntityID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Severity  string    `gorm:"not null"`
	Source    string    `gorm:"not null"`
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_log"
}
