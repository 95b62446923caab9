// Package queries contains read-only operations of the CQRS split. Query
// handlers go straight to the database and return flat response rows; the
// domain aggregate is never hydrated on the read path.
package queries

import (
	"errors"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order still in flight, oldest first.
// Used by the operations dashboard to show the live fulfillment queue.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order queue.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the active order queue.
type GetActiveOrdersQueryResponse struct {
	ID              kernel.UUID  `json:"id"`
	Code            string       `json:"code"`
	Status          string       `json:"status"`
	AssignedManager *kernel.UUID `json:"assigned_manager,omitempty"`
	ListingPriceEUR *float64     `json:"listing_price_eur,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
