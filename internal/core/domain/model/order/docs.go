// Package order provides the purchase-order aggregate of the resale
// marketplace and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root carrying identity, status, manager
//     assignment, and the denormalized listing snapshot
//   - Status: the canonical lifecycle graph with legacy-alias normalization
//     and a transition whitelist
//   - CancelReason: machine-readable cancellation reason codes
//
// Key business rules:
//   - statuses read from storage are normalized before any decision is made
//   - delivered, closed, and cancelled are terminal and have no outgoing
//     transitions
//   - every non-terminal status can transition to cancelled
package order
