package queries

import (
	"context"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the active order queue from the database.
// Terminal rows are filtered in SQL so the dashboard never pages through
// closed history.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query and returns active orders sorted by creation
// time ascending, matching the order in which the autopilot sweeps them.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := order.TerminalStatuses()
	excluded := make([]string, 0, len(terminal))
	for _, s := range terminal {
		excluded = append(excluded, string(s))
	}

	responses := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			assigned_manager,
			listing_price_eur,
			created_at
		FROM orders
		WHERE status NOT IN ?
		ORDER BY created_at ASC
	`, excluded).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			managerID *uuid.UUID
			resp      GetActiveOrdersQueryResponse
			createdAt time.Time
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Status,
			&managerID,
			&resp.ListingPriceEUR,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt

		if managerID != nil {
			assigned, mErr := kernel.UUIDFromBytes((*managerID)[:])
			if mErr != nil {
				return nil, mErr
			}
			resp.AssignedManager = &assigned
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
