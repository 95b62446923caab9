// Package services provides domain services that implement business rules
// spanning multiple aggregates of the resale marketplace.
//
// The package includes:
//   - AssignmentBalancer: least-loaded manager selection for unassigned orders
//   - CompliancePolicy: the price corridor check that can block an order
//   - EscalationTracker: SLA breach detection with per-order+status alert
//     deduplication
package services
