package commands

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"
	"resale/internal/core/domain/model/order"
	"resale/internal/core/domain/services"
	"resale/internal/core/ports"
)

// RunAutopilotCommandHandler orchestrates one full autopilot sweep:
// optional remote sync, compliance gating, least-loaded manager assignment,
// booked-order kickoff and SLA escalation. The handler is long-lived and
// safe for concurrent use; overlapping runs are collapsed to one.
//
// Per-order failures are counted and logged but never abort the sweep:
// one broken row must not starve the rest of the queue.
type RunAutopilotCommandHandler struct {
	orderRepo   ports.OrderRepository
	managerRepo ports.ManagerRepository
	auditLog    ports.AuditLog
	signals     ports.SignalRecorder
	localSync   ports.LocalSynchronizer

	policy   services.CompliancePolicy
	tracker  *services.EscalationTracker
	balancer services.AssignmentBalancer
	logger   *slog.Logger

	inProgress atomic.Bool

	mu        sync.Mutex
	lastRunAt *time.Time
	lastRun   *RunSummary
}

// NewRunAutopilotCommandHandler creates the autopilot handler. Repositories
// may be nil: the handler then reports runs as unavailable instead of
// failing construction, so the rest of the application can still boot.
// auditLog, signals and localSync are optional; nil policy and tracker fall
// back to defaults.
func NewRunAutopilotCommandHandler(
	orderRepo ports.OrderRepository,
	managerRepo ports.ManagerRepository,
	auditLog ports.AuditLog,
	signals ports.SignalRecorder,
	localSync ports.LocalSynchronizer,
	policy *services.CompliancePolicy,
	tracker *services.EscalationTracker,
	logger *slog.Logger,
) *RunAutopilotCommandHandler {
	effectivePolicy := services.DefaultCompliancePolicy()
	if policy != nil {
		effectivePolicy = *policy
	}
	if tracker == nil {
		tracker = services.NewEscalationTracker(nil, services.DefaultEscalationCooldown)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RunAutopilotCommandHandler{
		orderRepo:   orderRepo,
		managerRepo: managerRepo,
		auditLog:    auditLog,
		signals:     signals,
		localSync:   localSync,
		policy:      effectivePolicy,
		tracker:     tracker,
		balancer:    services.NewAssignmentBalancer(),
		logger:      logger,
	}
}

// Status returns the current autopilot state: whether a run is in flight
// and the outcome of the most recent completed run.
func (h *RunAutopilotCommandHandler) Status() AutopilotStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	return AutopilotStatus{
		InProgress: h.inProgress.Load(),
		LastRunAt:  h.lastRunAt,
		LastRun:    h.lastRun,
	}
}

// Handle executes one autopilot run and returns its summary. A run that
// is skipped (already in flight, no store, no managers) still produces a
// summary with Success false and a Reason; an error is returned only when
// loading the working set fails outright.
func (h *RunAutopilotCommandHandler) Handle(ctx context.Context, command RunAutopilotCommand) (summary RunSummary, err error) {
	if validateErr := command.Validate(); validateErr != nil {
		return RunSummary{}, validateErr
	}

	summary.Trigger = command.Trigger()
	summary.StartedAt = time.Now().UTC()

	if h.orderRepo == nil || h.managerRepo == nil {
		summary.Reason = ReasonAutopilotUnavailable
		summary.FinishedAt = time.Now().UTC()
		return summary, nil
	}

	if !h.inProgress.CompareAndSwap(false, true) {
		summary.Reason = ReasonAlreadyRunning
		summary.FinishedAt = time.Now().UTC()
		return summary, nil
	}

	defer func() {
		summary.FinishedAt = time.Now().UTC()

		h.mu.Lock()
		finished := summary.FinishedAt
		h.lastRunAt = &finished
		snapshot := summary
		h.lastRun = &snapshot
		h.mu.Unlock()

		h.inProgress.Store(false)
	}()

	managers, err := h.managerRepo.GetAllActive(ctx)
	if err != nil {
		return summary, err
	}

	pool := manager.NormalizePool(managers)
	if len(pool) == 0 {
		summary.Reason = ReasonNoManagersAvailable
		return summary, nil
	}

	poolIDs := make(map[kernel.UUID]*manager.Manager, len(pool))
	for _, m := range pool {
		poolIDs[m.ID()] = m
	}

	assignments, err := h.orderRepo.GetActiveAssignments(ctx)
	if err != nil {
		return summary, err
	}

	// Load counts only managers in today's pool: rows pointing at
	// deactivated accounts must not distort the balance.
	load := make(map[kernel.UUID]int, len(pool))
	for _, a := range assignments {
		if a.Manager == nil {
			continue
		}
		if _, ok := poolIDs[*a.Manager]; ok {
			load[*a.Manager]++
		}
	}

	orders, err := h.orderRepo.GetAllActive(ctx)
	if err != nil {
		return summary, err
	}

	now := time.Now().UTC()
	h.tracker.Sweep(now)

	for _, o := range orders {
		summary.Scanned++
		h.processOrder(ctx, o, poolIDs, pool, load, now, &summary)
	}

	// Sync runs after the sweep, so the counters above reflect the state
	// the run actually saw; the fresh rows are picked up next run.
	if command.SyncLocal() && h.localSync != nil {
		report, syncErr := h.localSync.SyncFromRemote(ctx)
		if syncErr != nil {
			h.logger.Warn("autopilot: local sync failed", "error", syncErr)
		} else {
			summary.Sync = &report
		}
	}

	summary.Success = true

	return summary, nil
}

func (h *RunAutopilotCommandHandler) processOrder(
	ctx context.Context,
	o *order.Order,
	poolIDs map[kernel.UUID]*manager.Manager,
	pool []*manager.Manager,
	load map[kernel.UUID]int,
	now time.Time,
	summary *RunSummary,
) {
	if reason, blocked := h.policy.Check(o); blocked {
		if h.blockOutOfPolicy(ctx, o, reason, summary) {
			return
		}
		// The cancellation did not persist, so the gate fails open and
		// the order goes through assignment and SLA checks as usual.
	}

	assigned := o.Manager()
	if assigned != nil {
		if _, valid := poolIDs[*assigned]; !valid {
			o.ClearManager()
			assigned = nil
			summary.ReassignedFromInvalidManager++
		}
	}

	status := o.Status()

	switch {
	case assigned == nil:
		picked := h.balancer.PickManager(load, pool)
		if picked == nil {
			return
		}

		var newStatus *order.Status
		if status == order.StatusBooked {
			s := order.StatusSellerCheckInProgress
			newStatus = &s
		}

		if err := h.orderRepo.AssignManager(ctx, o.ID(), picked.ID(), newStatus); err != nil {
			summary.Errors++
			h.logger.Error("autopilot: assign failed",
				"order", o.Code(), "manager", picked.ID().String(), "error", err)
			return
		}

		load[picked.ID()]++
		summary.Assigned++

		// Keep the aggregate in step with the row so the SLA signal below
		// carries the manager the order just received.
		_ = o.Assign(picked.ID())

		if newStatus != nil {
			summary.MovedToSellerCheck++
			status = *newStatus
			h.appendStatusEvent(ctx, o, order.StatusBooked, status)
		}

		h.appendAudit(ctx, ports.AuditActionAutoAssign, o, map[string]any{
			"manager_id":   picked.ID().String(),
			"manager_name": picked.Name(),
			"moved":        newStatus != nil,
		})

	case status == order.StatusBooked:
		// Already in good hands, just kick the work off.
		if err := h.orderRepo.UpdateStatus(ctx, o.ID(), order.StatusSellerCheckInProgress, nil); err != nil {
			summary.Errors++
			h.logger.Error("autopilot: kickoff failed", "order", o.Code(), "error", err)
			return
		}

		summary.MovedToSellerCheck++
		h.appendStatusEvent(ctx, o, status, order.StatusSellerCheckInProgress)
		status = order.StatusSellerCheckInProgress
	}

	esc, breached := h.tracker.Evaluate(o.ID(), status, o.CreatedAt(), now)
	if !breached {
		return
	}

	summary.SLAAlerts++

	h.appendAudit(ctx, ports.AuditActionSLABreach, o, map[string]any{
		"status":    string(status),
		"age_hours": esc.AgeHours,
		"sla_hours": esc.SLAHours,
	})

	if h.signals != nil {
		err := h.signals.RecordSlaBreach(ctx, o.ID(), ports.SlaBreach{
			OrderCode:       o.Code(),
			Status:          status,
			AgeHours:        esc.AgeHours,
			SlaHours:        esc.SLAHours,
			AssignedManager: o.Manager(),
		})
		if err != nil {
			h.logger.Warn("autopilot: sla signal failed", "order", o.Code(), "error", err)
		}
	}
}

// blockOutOfPolicy cancels an order that violates price policy and reports
// whether the cancellation persisted. When the write fails the caller keeps
// processing the order normally this pass: the gate fails open.
func (h *RunAutopilotCommandHandler) blockOutOfPolicy(
	ctx context.Context,
	o *order.Order,
	reason order.CancelReason,
	summary *RunSummary,
) bool {
	if err := h.orderRepo.UpdateStatus(ctx, o.ID(), order.StatusCancelled, &reason); err != nil {
		summary.Errors++
		h.logger.Error("autopilot: policy block failed", "order", o.Code(), "error", err)
		return false
	}

	summary.BlockedOutOfPolicy++
	h.appendStatusEvent(ctx, o, o.Status(), order.StatusCancelled)

	price, _ := o.PriceEUR()

	h.appendAudit(ctx, ports.AuditActionBlockOutOfPolicy, o, map[string]any{
		"price_eur": price,
		"reason":    string(reason),
	})

	if h.signals != nil {
		err := h.signals.RecordComplianceBlock(ctx, o.ID(), ports.ComplianceBlock{
			OrderCode: o.Code(),
			PriceEUR:  price,
			Reason:    reason,
		})
		if err != nil {
			h.logger.Warn("autopilot: compliance signal failed", "order", o.Code(), "error", err)
		}
	}

	return true
}

func (h *RunAutopilotCommandHandler) appendStatusEvent(ctx context.Context, o *order.Order, from, to order.Status) {
	if h.auditLog == nil {
		return
	}
	if err := h.auditLog.AppendStatusEvent(ctx, o.ID(), from, to); err != nil {
		h.logger.Warn("autopilot: status event append failed", "order", o.Code(), "error", err)
	}
}

func (h *RunAutopilotCommandHandler) appendAudit(ctx context.Context, action string, o *order.Order, payload map[string]any) {
	if h.auditLog == nil {
		return
	}
	if err := h.auditLog.AppendAuditEntry(ctx, action, o.ID(), payload); err != nil {
		h.logger.Warn("autopilot: audit append failed", "order", o.Code(), "action", action, "error", err)
	}
}
