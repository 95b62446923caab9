// Package signalrepo persists operator-facing signals raised by the
// autopilot into the ai_signals table consumed by the operations dashboard.
package signalrepo

import (
	"time"

	"github.com/google/uuid"
)

// SignalDTO represents one row of the ai_signals table.
type SignalDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"index;not null"`
	Severity  string    `gorm:"index;not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"not null"`
	Insight   string
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for signals.
func (SignalDTO) TableName() string {
	return "ai_signals"
}
