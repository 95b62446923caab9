package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed its
	// constructor functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTransitionNotAllowed is returned when a requested status change is
	// not in the transition whitelist.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")
)

// Financials is the nested money block inside a listing snapshot.
type Financials struct {
	BikePriceEUR float64 `json:"bike_price_eur,omitempty"`
}

// Snapshot is the denormalized listing snapshot captured at booking time.
// It is owned by the booking flow; the orchestration core only reads the
// pricing fields from it.
type Snapshot struct {
	ListingPriceEUR float64    `json:"listing_price_eur,omitempty"`
	PriceEUR        float64    `json:"price_eur,omitempty"`
	Price           float64    `json:"price,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Financials      Financials `json:"financials,omitempty"`
}

// Assignment is the lightweight active-order projection used to seed the
// per-manager load map at the start of an autopilot run.
type Assignment struct {
	OrderID kernel.UUID
	Manager *kernel.UUID
	Status  Status
}

// Order is the purchase-order aggregate of the resale marketplace. The
// orchestration core reads and transitions it; it is created by the booking
// flow and never deleted, resting permanently in a terminal status.
//
// Invariants:
//   - identity and creation time are immutable
//   - status changes go through the transition whitelist
//   - a cancel reason is set only when the order is cancelled
type Order struct {
	id              kernel.UUID
	code            string
	status          Status
	assignedManager *kernel.UUID
	createdAt       time.Time
	listingPriceEUR *float64
	snapshot        *Snapshot
	cancelReason    *CancelReason
	supersededBy    *kernel.UUID

	isConstructed bool
}

// NewOrder creates a freshly booked order. New orders always start in
// StatusBooked with no manager assigned.
func NewOrder(id kernel.UUID, code string, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:            id,
		code:          code,
		status:        StatusBooked,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence. The raw status is
// normalized onto the canonical set before any decision is made; when the
// stored value is unrecognized it is kept as-is so the order surfaces in
// projections without ever passing a transition check.
func RestoreOrder(
	id kernel.UUID,
	code string,
	rawStatus string,
	assignedManager *kernel.UUID,
	createdAt time.Time,
	listingPriceEUR *float64,
	snapshot *Snapshot,
	cancelReason *CancelReason,
	supersededBy *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, code, createdAt)
	if err != nil {
		return nil, err
	}

	if status, ok := NormalizeStatus(rawStatus); ok {
		o.status = status
	} else {
		o.status = Status(rawStatus)
	}
	o.assignedManager = assignedManager
	o.listingPriceEUR = listingPriceEUR
	o.snapshot = snapshot
	o.cancelReason = cancelReason
	o.supersededBy = supersededBy
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-facing order code.
func (o *Order) Code() string {
	return o.code
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Manager returns the assigned manager's ID, or nil when unassigned.
func (o *Order) Manager() *kernel.UUID {
	return o.assignedManager
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ListingPriceEUR returns the explicit listing price field, or nil.
func (o *Order) ListingPriceEUR() *float64 {
	return o.listingPriceEUR
}

// Snapshot returns the denormalized listing snapshot, or nil.
func (o *Order) Snapshot() *Snapshot {
	return o.snapshot
}

// CancelReason returns the cancellation reason code, or nil.
func (o *Order) CancelReason() *CancelReason {
	return o.cancelReason
}

// SupersededBy returns the replacement order's ID, or nil.
func (o *Order) SupersededBy() *kernel.UUID {
	return o.supersededBy
}

// PriceEUR extracts the effective listing price with a fixed precedence: the
// explicit listing price field first, then the snapshot's listing_price_eur,
// price_eur, price, and financials.bike_price_eur. The first finite positive
// number wins; the second return value is false when none exists.
func (o *Order) PriceEUR() (float64, bool) {
	candidates := make([]float64, 0, 5)
	if o.listingPriceEUR != nil {
		candidates = append(candidates, *o.listingPriceEUR)
	}
	if o.snapshot != nil {
		candidates = append(candidates,
			o.snapshot.ListingPriceEUR,
			o.snapshot.PriceEUR,
			o.snapshot.Price,
			o.snapshot.Financials.BikePriceEUR,
		)
	}
	for _, c := range candidates {
		if c > 0 && !math.IsInf(c, 0) && !math.IsNaN(c) {
			return c, true
		}
	}
	return 0, false
}

// TransitionTo moves the order to a new status through the whitelist.
// A self-transition is a legal no-op.
func (o *Order) TransitionTo(to Status) error {
	if !CanTransition(o.status, to) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, o.status, to))
	}
	normalized, _ := NormalizeStatus(string(to))
	o.status = normalized
	return nil
}

// Cancel aborts the order with a reason code. Legal from any non-terminal
// status.
func (o *Order) Cancel(reason CancelReason) error {
	if err := o.TransitionTo(StatusCancelled); err != nil {
		return err
	}
	o.cancelReason = &reason
	return nil
}

// Assign records the manager reference on the order. Status movement is a
// separate concern handled by TransitionTo.
func (o *Order) Assign(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	o.assignedManager = &managerID
	return nil
}

// ClearManager drops the manager reference. Used when the referenced manager
// is no longer in the active pool, so the order is treated as unassigned on
// the current pass.
func (o *Order) ClearManager() {
	o.assignedManager = nil
}
