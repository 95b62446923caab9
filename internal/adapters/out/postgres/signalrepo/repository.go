package signalrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	kindSlaBreach       = "sla_breach"
	kindComplianceBlock = "compliance_block"
)

// GormSignalRecorder implements ports.SignalRecorder using GORM.
type GormSignalRecorder struct {
	db *gorm.DB
}

// NewGormSignalRecorder creates a new GORM signal recorder.
func NewGormSignalRecorder(db *gorm.DB) *GormSignalRecorder {
	return &GormSignalRecorder{db: db}
}

// RecordSlaBreach stores a high-severity signal for an order stuck past
// its status dwell budget.
func (r *GormSignalRecorder) RecordSlaBreach(ctx context.Context, orderID kernel.UUID, breach ports.SlaBreach) error {
	fields := map[string]any{
		"status":    string(breach.Status),
		"age_hours": breach.AgeHours,
		"sla_hours": breach.SlaHours,
	}
	if breach.AssignedManager != nil {
		fields["assigned_manager"] = breach.AssignedManager.String()
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	insight := fmt.Sprintf(
		"Order %s has been in %s for %.1fh against a %.0fh budget.",
		breach.OrderCode, breach.Status, breach.AgeHours, breach.SlaHours,
	)
	if breach.AssignedManager == nil {
		insight += " No manager is assigned."
	}

	dto := SignalDTO{
		ID:        uuid.New(),
		Kind:      kindSlaBreach,
		Severity:  "high",
		OrderID:   orderID.Bytes(),
		Title:     fmt.Sprintf("SLA breach on %s", breach.OrderCode),
		Insight:   insight,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// RecordComplianceBlock stores a critical signal for an order cancelled
// out of price policy.
func (r *GormSignalRecorder) RecordComplianceBlock(ctx context.Context, orderID kernel.UUID, block ports.ComplianceBlock) error {
	payload, err := json.Marshal(map[string]any{
		"price_eur": block.PriceEUR,
		"reason":    string(block.Reason),
	})
	if err != nil {
		return err
	}

	dto := SignalDTO{
		ID:       uuid.New(),
		Kind:     kindComplianceBlock,
		Severity: "critical",
		OrderID:  orderID.Bytes(),
		Title:    fmt.Sprintf("Out-of-policy order %s blocked", block.OrderCode),
		Insight: fmt.Sprintf(
			"Order %s was cancelled at %.2f EUR (%s).",
			block.OrderCode, block.PriceEUR, block.Reason,
		),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
