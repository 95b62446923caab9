package order

import (
	"fmt"
	"strings"

	"resale/internal/pkg/errs"
)

// Status represents an order's position in the fulfillment lifecycle.
// The canonical set covers the whole cross-border resale flow from booking
// through seller check, payment, expert inspection, and warehouse handling to
// the terminal states.
//
// Statuses read from storage may be legacy aliases; NormalizeStatus maps them
// onto the canonical set before any decision is made.
type Status string

const (
	StatusBooked                               Status = "booked"
	StatusReservePaymentPending                Status = "reserve_payment_pending"
	StatusReservePaid                          Status = "reserve_paid"
	StatusSellerCheckInProgress                Status = "seller_check_in_progress"
	StatusCheckReady                           Status = "check_ready"
	StatusAwaitingClientDecision               Status = "awaiting_client_decision"
	StatusFullPaymentPending                   Status = "full_payment_pending"
	StatusFullPaymentReceived                  Status = "full_payment_received"
	StatusBikeBuyoutCompleted                  Status = "bike_buyout_completed"
	StatusSellerShipped                        Status = "seller_shipped"
	StatusExpertReceived                       Status = "expert_received"
	StatusExpertInspectionInProgress           Status = "expert_inspection_in_progress"
	StatusExpertReportReady                    Status = "expert_report_ready"
	StatusAwaitingClientDecisionPostInspection Status = "awaiting_client_decision_post_inspection"
	StatusWarehouseReceived                    Status = "warehouse_received"
	StatusWarehouseRepacked                    Status = "warehouse_repacked"
	StatusShippedToRussia                      Status = "shipped_to_russia"
	StatusDelivered                            Status = "delivered"
	StatusClosed                               Status = "closed"
	StatusCancelled                            Status = "cancelled"
)

// allStatuses lists the canonical set. Order matters only for AllStatuses.
var allStatuses = []Status{
	StatusBooked,
	StatusReservePaymentPending,
	StatusReservePaid,
	StatusSellerCheckInProgress,
	StatusCheckReady,
	StatusAwaitingClientDecision,
	StatusFullPaymentPending,
	StatusFullPaymentReceived,
	StatusBikeBuyoutCompleted,
	StatusSellerShipped,
	StatusExpertReceived,
	StatusExpertInspectionInProgress,
	StatusExpertReportReady,
	StatusAwaitingClientDecisionPostInspection,
	StatusWarehouseReceived,
	StatusWarehouseRepacked,
	StatusShippedToRussia,
	StatusDelivered,
	StatusClosed,
	StatusCancelled,
}

// statusAliases maps legacy status values still present in older rows onto
// the canonical set.
var statusAliases = map[string]Status{
	"new":                  StatusBooked,
	"pending_manager":      StatusBooked,
	"awaiting_deposit":     StatusReservePaymentPending,
	"deposit_paid":         StatusReservePaid,
	"awaiting_payment":     StatusFullPaymentPending,
	"under_inspection":     StatusSellerCheckInProgress,
	"inspection":           StatusSellerCheckInProgress,
	"hunting":              StatusSellerCheckInProgress,
	"chat_negotiation":     StatusSellerCheckInProgress,
	"quality_confirmed":    StatusCheckReady,
	"quality_degraded":     StatusCheckReady,
	"negotiation_finished": StatusCheckReady,
	"confirmed":            StatusFullPaymentPending,
	"processing":           StatusWarehouseRepacked,
	"ready_for_shipment":   StatusWarehouseRepacked,
	"shipped":              StatusShippedToRussia,
	"in_transit":           StatusShippedToRussia,
	"full_paid":            StatusFullPaymentReceived,
	"paid_out":             StatusClosed,
	"refunded":             StatusCancelled,
}

// transitions is the whitelist of outgoing edges per status. Terminal
// statuses carry no outgoing edges; every non-terminal status can be
// cancelled, modeling that any in-flight order can be aborted.
var transitions = map[Status][]Status{
	StatusBooked: {
		StatusReservePaymentPending,
		StatusSellerCheckInProgress,
		StatusCancelled,
	},
	StatusReservePaymentPending: {
		StatusReservePaid,
		StatusSellerCheckInProgress,
		StatusCancelled,
	},
	StatusReservePaid: {
		StatusSellerCheckInProgress,
		StatusFullPaymentPending,
		StatusCancelled,
	},
	StatusSellerCheckInProgress: {
		StatusCheckReady,
		StatusCancelled,
	},
	StatusCheckReady: {
		StatusAwaitingClientDecision,
		StatusCancelled,
	},
	StatusAwaitingClientDecision: {
		StatusFullPaymentPending,
		StatusCancelled,
	},
	StatusFullPaymentPending: {
		StatusFullPaymentReceived,
		StatusCancelled,
	},
	StatusFullPaymentReceived: {
		StatusBikeBuyoutCompleted,
		StatusCancelled,
	},
	StatusBikeBuyoutCompleted: {
		StatusSellerShipped,
		StatusWarehouseReceived,
		StatusCancelled,
	},
	StatusSellerShipped: {
		StatusExpertReceived,
		StatusWarehouseReceived,
		StatusCancelled,
	},
	StatusExpertReceived: {
		StatusExpertInspectionInProgress,
		StatusCancelled,
	},
	StatusExpertInspectionInProgress: {
		StatusExpertReportReady,
		StatusCancelled,
	},
	StatusExpertReportReady: {
		StatusAwaitingClientDecisionPostInspection,
		StatusWarehouseReceived,
		StatusCancelled,
	},
	StatusAwaitingClientDecisionPostInspection: {
		StatusWarehouseReceived,
		StatusCancelled,
	},
	StatusWarehouseReceived: {
		StatusWarehouseRepacked,
		StatusCancelled,
	},
	StatusWarehouseRepacked: {
		StatusShippedToRussia,
		StatusCancelled,
	},
	StatusShippedToRussia: {
		StatusDelivered,
		StatusCancelled,
	},
	StatusDelivered: {},
	StatusClosed:    {},
	StatusCancelled: {},
}

// AllStatuses returns the canonical status set.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// TerminalStatuses returns the statuses with no outgoing transitions.
func TerminalStatuses() []Status {
	return []Status{StatusDelivered, StatusClosed, StatusCancelled}
}

// NormalizeStatus maps raw input onto the canonical status set. Input is
// trimmed and lower-cased, canonical values pass through unchanged, and
// legacy aliases map to their canonical status. The second return value is
// false for unrecognized input. Normalization is idempotent.
func NormalizeStatus(raw string) (Status, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return "", false
	}
	s := Status(cleaned)
	if _, ok := transitions[s]; ok {
		return s, true
	}
	if canonical, ok := statusAliases[cleaned]; ok {
		return canonical, true
	}
	return "", false
}

// CanTransition reports whether moving from one status to another is legal.
// Both sides are normalized first; a self-transition is always legal, and
// anything that fails to normalize is not.
func CanTransition(from, to Status) bool {
	f, ok := NormalizeStatus(string(from))
	if !ok {
		return false
	}
	t, ok := NormalizeStatus(string(to))
	if !ok {
		return false
	}
	if f == t {
		return true
	}
	for _, next := range transitions[f] {
		if next == t {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusClosed || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Validate rejects values outside the canonical set.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a canonical status", string(s)))
	}
	return nil
}
