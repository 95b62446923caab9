package services

import (
	"sync"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"
)

const (
	// DefaultEscalationCooldown is the minimum time between repeated alerts
	// for the same order+status pair.
	DefaultEscalationCooldown = 2 * time.Hour

	// MinEscalationCooldown is the floor any configured cooldown is clamped
	// to.
	MinEscalationCooldown = 15 * time.Minute

	// markRetentionCooldowns controls how long dedup marks outlive their
	// cooldown window before Sweep drops them.
	markRetentionCooldowns = 4
)

// DefaultSLAThresholds returns the maximum allowed age in hours per tracked
// status. Statuses absent from the table are not escalated.
func DefaultSLAThresholds() map[order.Status]float64 {
	return map[order.Status]float64{
		order.StatusBooked:                 12,
		order.StatusReservePaymentPending:  24,
		order.StatusSellerCheckInProgress:  48,
		order.StatusCheckReady:             24,
		order.StatusAwaitingClientDecision: 24,
		order.StatusFullPaymentPending:     24,
	}
}

type escalationKey struct {
	orderID kernel.UUID
	status  order.Status
}

// Escalation describes a single SLA breach to be emitted.
type Escalation struct {
	AgeHours float64
	SLAHours float64
}

// EscalationTracker detects orders stuck too long in a tracked status and
// deduplicates alerts per order+status pair within a cooldown window.
//
// Age is measured from order creation, not from entry into the current
// status. An order that moved recently but was created long ago still
// escalates; this matches the product's historical behavior and is kept
// deliberately.
//
// The tracker is the only state that survives across autopilot runs, so the
// dedup map is bounded: Sweep drops marks older than a few cooldown windows
// and is called at the start of every run.
type EscalationTracker struct {
	mu         sync.Mutex
	thresholds map[order.Status]float64
	cooldown   time.Duration
	marks      map[escalationKey]time.Time
}

// NewEscalationTracker creates a tracker with the given threshold table and
// cooldown. A nil table falls back to DefaultSLAThresholds; a cooldown below
// the floor is clamped to MinEscalationCooldown.
func NewEscalationTracker(thresholds map[order.Status]float64, cooldown time.Duration) *EscalationTracker {
	if thresholds == nil {
		thresholds = DefaultSLAThresholds()
	}
	if cooldown < MinEscalationCooldown {
		cooldown = MinEscalationCooldown
	}
	return &EscalationTracker{
		thresholds: thresholds,
		cooldown:   cooldown,
		marks:      make(map[escalationKey]time.Time),
	}
}

// Cooldown returns the effective cooldown after clamping.
func (t *EscalationTracker) Cooldown() time.Duration {
	return t.cooldown
}

// Evaluate checks one order against the threshold table. When the order has
// exceeded its status threshold and no alert was emitted for this
// order+status pair within the cooldown window, Evaluate records a dedup
// mark and returns the escalation details with true. In every other case it
// returns false, guaranteeing at most one escalation per order+status per
// cooldown window regardless of how many runs happen inside it.
func (t *EscalationTracker) Evaluate(
	orderID kernel.UUID,
	status order.Status,
	createdAt time.Time,
	now time.Time,
) (Escalation, bool) {
	slaHours, tracked := t.thresholds[status]
	if !tracked {
		return Escalation{}, false
	}
	ageHours := now.Sub(createdAt).Hours()
	if ageHours <= slaHours {
		return Escalation{}, false
	}

	key := escalationKey{orderID: orderID, status: status}

	t.mu.Lock()
	defer t.mu.Unlock()

	if last, seen := t.marks[key]; seen && now.Sub(last) < t.cooldown {
		return Escalation{}, false
	}
	t.marks[key] = now

	return Escalation{AgeHours: ageHours, SLAHours: slaHours}, true
}

// Sweep drops dedup marks older than several cooldown windows so the map
// stays bounded over the tracker's lifetime.
func (t *EscalationTracker) Sweep(now time.Time) {
	horizon := time.Duration(markRetentionCooldowns) * t.cooldown

	t.mu.Lock()
	defer t.mu.Unlock()

	for key, last := range t.marks {
		if now.Sub(last) > horizon {
			delete(t.marks, key)
		}
	}
}

// MarkCount returns the number of live dedup marks. Used by tests and
// status reporting.
func (t *EscalationTracker) MarkCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.marks)
}
