package order

import "strings"

// CancelReason is the machine-readable reason code written when an order is
// cancelled.
type CancelReason string

const (
	CancelReasonSupersededByPaidReserve CancelReason = "superseded_by_paid_reserve"
	CancelReasonClientChangedMind       CancelReason = "client_changed_mind"
	CancelReasonBikeUnavailable         CancelReason = "bike_unavailable"
	CancelReasonSellerUnresponsive      CancelReason = "seller_unresponsive"
	CancelReasonSellerFraudSuspected    CancelReason = "seller_fraud_suspected"
	CancelReasonQualityMismatch         CancelReason = "quality_mismatch"
	CancelReasonFailedSellerCheck       CancelReason = "failed_seller_check"
	CancelReasonAboveUpperBound         CancelReason = "above_upper_bound"
	CancelReasonBelowLowerBound         CancelReason = "below_lower_bound"
	CancelReasonPaymentNotReceived      CancelReason = "payment_not_received"
	CancelReasonDuplicateBooking        CancelReason = "duplicate_booking"
	CancelReasonInternalServiceFailure  CancelReason = "internal_service_failure"
	CancelReasonLogisticsImpossible     CancelReason = "logistics_impossible"
	CancelReasonClientUnreachable       CancelReason = "client_unreachable"
	CancelReasonOther                   CancelReason = "other"
)

var cancelReasons = map[CancelReason]struct{}{
	CancelReasonSupersededByPaidReserve: {},
	CancelReasonClientChangedMind:       {},
	CancelReasonBikeUnavailable:         {},
	CancelReasonSellerUnresponsive:      {},
	CancelReasonSellerFraudSuspected:    {},
	CancelReasonQualityMismatch:         {},
	CancelReasonFailedSellerCheck:       {},
	CancelReasonAboveUpperBound:         {},
	CancelReasonBelowLowerBound:         {},
	CancelReasonPaymentNotReceived:      {},
	CancelReasonDuplicateBooking:        {},
	CancelReasonInternalServiceFailure:  {},
	CancelReasonLogisticsImpossible:     {},
	CancelReasonClientUnreachable:       {},
	CancelReasonOther:                   {},
}

// NormalizeCancelReason maps raw input onto the canonical reason set,
// falling back to CancelReasonOther for anything unrecognized.
func NormalizeCancelReason(raw string) CancelReason {
	cleaned := CancelReason(strings.ToLower(strings.TrimSpace(raw)))
	if cleaned == "" {
		return CancelReasonOther
	}
	if _, ok := cancelReasons[cleaned]; ok {
		return cleaned
	}
	return CancelReasonOther
}

// String implements fmt.Stringer.
func (r CancelReason) String() string {
	return string(r)
}
