package services

import (
	"resale/internal/core/domain/model/order"
	"resale/internal/pkg/errs"
)

// Default price bounds in EUR. Orders priced outside (lower, upper) are out
// of policy.
const (
	DefaultPriceUpperBoundEUR = 5000
	DefaultPriceLowerBoundEUR = 500
)

// CompliancePolicy decides whether an order's listing price is allowed. The
// check is pure; the autopilot performs the actual cancellation so that a
// failed store write can fall open to normal processing.
type CompliancePolicy struct {
	upperBoundEUR float64
	lowerBoundEUR float64
}

// NewCompliancePolicy creates a policy with explicit bounds. Bounds must be
// positive with lower < upper.
func NewCompliancePolicy(upperBoundEUR, lowerBoundEUR float64) (CompliancePolicy, error) {
	if lowerBoundEUR <= 0 || upperBoundEUR <= lowerBoundEUR {
		return CompliancePolicy{}, errs.NewValueIsOutOfRangeError(
			"priceBoundsEur", lowerBoundEUR, 0, upperBoundEUR)
	}
	return CompliancePolicy{upperBoundEUR: upperBoundEUR, lowerBoundEUR: lowerBoundEUR}, nil
}

// DefaultCompliancePolicy returns the policy with the standard 500-5000 EUR
// corridor.
func DefaultCompliancePolicy() CompliancePolicy {
	return CompliancePolicy{
		upperBoundEUR: DefaultPriceUpperBoundEUR,
		lowerBoundEUR: DefaultPriceLowerBoundEUR,
	}
}

// UpperBoundEUR returns the configured upper price bound.
func (p CompliancePolicy) UpperBoundEUR() float64 {
	return p.upperBoundEUR
}

// LowerBoundEUR returns the configured lower price bound.
func (p CompliancePolicy) LowerBoundEUR() float64 {
	return p.lowerBoundEUR
}

// Check evaluates an order against the price corridor. It returns the cancel
// reason and true when the order must be blocked. Orders without an
// extractable price pass (the gate is a no-op), as do orders already resting
// in a terminal status.
func (p CompliancePolicy) Check(o *order.Order) (order.CancelReason, bool) {
	if o == nil || o.Status().IsTerminal() {
		return "", false
	}
	price, ok := o.PriceEUR()
	if !ok {
		return "", false
	}
	if price > p.upperBoundEUR {
		return order.CancelReasonAboveUpperBound, true
	}
	if price < p.lowerBoundEUR {
		return order.CancelReasonBelowLowerBound, true
	}
	return "", false
}
