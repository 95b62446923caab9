package commands

import (
	"time"

	"resale/internal/core/ports"
)

// Skip reasons reported when a run finishes without sweeping any orders.
const (
	ReasonAutopilotUnavailable = "autopilot_unavailable"
	ReasonAlreadyRunning       = "already_running"
	ReasonNoManagersAvailable  = "no_managers_available"
)

// RunSummary aggregates the counters of a single autopilot run. Field
// names are part of the reporting contract and mirror the audit trail.
type RunSummary struct {
	Success                      bool              `json:"success"`
	Trigger                      string            `json:"trigger"`
	Reason                       string            `json:"reason,omitempty"`
	StartedAt                    time.Time         `json:"started_at"`
	FinishedAt                   time.Time         `json:"finished_at"`
	Scanned                      int               `json:"scanned"`
	Assigned                     int               `json:"assigned"`
	ReassignedFromInvalidManager int               `json:"reassigned_from_invalid_manager"`
	MovedToSellerCheck           int               `json:"moved_to_seller_check"`
	SLAAlerts                    int               `json:"sla_alerts"`
	BlockedOutOfPolicy           int               `json:"blocked_out_of_policy"`
	Errors                       int               `json:"errors"`
	Sync                         *ports.SyncReport `json:"sync,omitempty"`
}

// AutopilotStatus is the externally visible state of the autopilot.
type AutopilotStatus struct {
	Running    bool        `json:"running"`
	InProgress bool        `json:"in_progress"`
	LastRunAt  *time.Time  `json:"last_run_at,omitempty"`
	LastRun    *RunSummary `json:"last_run,omitempty"`
}
